package catalog

import "sparkAgent/domain"

// mockProducts seeds the catalog with the demo phone lineup. Prices
// are in INR.
func mockProducts() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "iPhone 13", Price: 29999, OriginalPrice: 34999,
			Rating: 4.5, ReviewsCount: 2847, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.1 inch Super Retina XDR OLED",
				"processor":   "Apple A15 Bionic",
				"ram":         "6GB",
				"storage":     "128GB",
				"main_camera": "12MP Dual Camera",
				"battery":     "3227 mAh",
				"os":          "iOS 15",
			},
			Reviews: []domain.Review{
				{Text: "Amazing camera quality! The photos are crisp and clear even in low light. Battery life easily lasts the whole day.", Rating: 5},
				{Text: "Good phone but battery drains fast when gaming. Camera is excellent for photography.", Rating: 4},
				{Text: "Superb performance and the camera is just outstanding. Battery life is decent.", Rating: 5},
				{Text: "Camera quality is phenomenal. Battery could be better but overall great phone.", Rating: 4},
			},
		},
		{
			ID: 2, Name: "OnePlus 11", Price: 28999, OriginalPrice: 32999,
			Rating: 4.3, ReviewsCount: 1923, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.7 inch AMOLED 120Hz",
				"processor":   "Snapdragon 8 Gen 2",
				"ram":         "8GB",
				"storage":     "128GB",
				"main_camera": "50MP Triple Camera",
				"battery":     "5000 mAh",
				"os":          "Android 13",
			},
			Reviews: []domain.Review{
				{Text: "Blazing fast performance! Gaming is smooth. Battery lasts 1.5 days with moderate use.", Rating: 5},
				{Text: "Excellent battery life and super fast charging. Camera is good but not the best.", Rating: 4},
				{Text: "Best battery life in this range. Camera quality is decent. Great for gaming.", Rating: 4},
				{Text: "Performance is top-notch. Battery easily lasts all day. Camera could be improved.", Rating: 4},
			},
		},
		{
			ID: 3, Name: "Samsung Galaxy S23", Price: 35999, OriginalPrice: 39999,
			Rating: 4.6, ReviewsCount: 3214, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.1 inch Dynamic AMOLED 2X 120Hz",
				"processor":   "Snapdragon 8 Gen 2",
				"ram":         "8GB",
				"storage":     "256GB",
				"main_camera": "50MP Triple Camera",
				"battery":     "3900 mAh",
				"os":          "Android 13",
			},
			Reviews: []domain.Review{
				{Text: "Compact and powerful! Camera is exceptional. Battery life is good for a small phone.", Rating: 5},
				{Text: "Amazing display and camera. Battery life could be better but fast charging helps.", Rating: 4},
				{Text: "Best camera in this size. Performance is excellent. Battery is adequate.", Rating: 5},
				{Text: "Premium build quality. Camera is fantastic. Gaming performance is smooth.", Rating: 5},
			},
		},
		{
			ID: 4, Name: "Xiaomi 13 Pro", Price: 24999, OriginalPrice: 29999,
			Rating: 4.2, ReviewsCount: 1567, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.73 inch AMOLED 120Hz",
				"processor":   "Snapdragon 8 Gen 2",
				"ram":         "12GB",
				"storage":     "256GB",
				"main_camera": "50MP Leica Camera",
				"battery":     "4820 mAh",
				"os":          "Android 13",
			},
			Reviews: []domain.Review{
				{Text: "Leica camera is amazing! Professional quality photos. Battery life is excellent.", Rating: 5},
				{Text: "Great value for money. Camera quality is superb. Battery easily lasts all day.", Rating: 4},
				{Text: "Performance is smooth. Camera with Leica is outstanding. Good battery backup.", Rating: 4},
				{Text: "Best camera phone under 30k. Gaming is smooth. Battery charging is super fast.", Rating: 5},
			},
		},
		{
			ID: 5, Name: "iPhone 15 Pro", Price: 45999, OriginalPrice: 49999,
			Rating: 4.8, ReviewsCount: 4521, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.1 inch Super Retina XDR OLED 120Hz",
				"processor":   "Apple A17 Pro",
				"ram":         "8GB",
				"storage":     "256GB",
				"main_camera": "48MP Triple Camera",
				"battery":     "3274 mAh",
				"os":          "iOS 17",
			},
			Reviews: []domain.Review{
				{Text: "Pro camera features are incredible! Battery life improved from last year. Gaming is phenomenal.", Rating: 5},
				{Text: "Best iPhone camera ever. Performance is unmatched. Battery life is good not great.", Rating: 5},
				{Text: "Action button is useful. Camera quality is professional grade. Battery could be better.", Rating: 4},
				{Text: "Titanium build feels premium. Camera is exceptional. Gaming performance is console-like.", Rating: 5},
			},
		},
		{
			ID: 6, Name: "Google Pixel 7", Price: 22999, OriginalPrice: 27999,
			Rating: 4.4, ReviewsCount: 1832, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.3 inch AMOLED 90Hz",
				"processor":   "Google Tensor G2",
				"ram":         "8GB",
				"storage":     "128GB",
				"main_camera": "50MP Dual Camera",
				"battery":     "4355 mAh",
				"os":          "Android 13",
			},
			Reviews: []domain.Review{
				{Text: "Best camera AI! Photos come out perfect every time. Battery life is impressive.", Rating: 5},
				{Text: "Google software is smooth. Camera is exceptional. Battery lasts all day easily.", Rating: 5},
				{Text: "Camera magic eraser is amazing. Performance is good. Battery life is solid.", Rating: 4},
				{Text: "Pure Android experience. Camera quality is top-notch. Gaming is decent.", Rating: 4},
			},
		},
		{
			ID: 7, Name: "Realme GT 3", Price: 19999, OriginalPrice: 24999,
			Rating: 4.1, ReviewsCount: 1245, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.74 inch AMOLED 144Hz",
				"processor":   "Snapdragon 8+ Gen 1",
				"ram":         "8GB",
				"storage":     "128GB",
				"main_camera": "50MP Triple Camera",
				"battery":     "4600 mAh",
				"os":          "Android 13",
			},
			Reviews: []domain.Review{
				{Text: "240W charging is insane! Full charge in 10 minutes. Gaming performance is excellent.", Rating: 5},
				{Text: "Best gaming phone under 20k. Battery charges super fast. Camera is decent.", Rating: 4},
				{Text: "144Hz display is smooth. Performance for gaming is top tier. Camera could be better.", Rating: 4},
				{Text: "Fastest charging ever! Gaming is buttery smooth. Battery life is good.", Rating: 4},
			},
		},
		{
			ID: 8, Name: "Vivo X90", Price: 31999, OriginalPrice: 35999,
			Rating: 4.3, ReviewsCount: 987, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.78 inch AMOLED 120Hz",
				"processor":   "MediaTek Dimensity 9200",
				"ram":         "8GB",
				"storage":     "256GB",
				"main_camera": "50MP Zeiss Camera",
				"battery":     "4810 mAh",
				"os":          "Android 13",
			},
			Reviews: []domain.Review{
				{Text: "Zeiss camera is brilliant! Night photography is excellent. Battery backup is great.", Rating: 5},
				{Text: "Camera quality with Zeiss is professional. Performance is smooth. Battery lasts long.", Rating: 4},
				{Text: "Best camera phone for photography enthusiasts. Gaming is good. Battery life impressive.", Rating: 5},
				{Text: "Display is gorgeous. Camera quality is exceptional. Battery easily lasts a day.", Rating: 4},
			},
		},
		{
			ID: 9, Name: "Nothing Phone 2", Price: 27999, OriginalPrice: 31999,
			Rating: 4.0, ReviewsCount: 756, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.7 inch OLED 120Hz",
				"processor":   "Snapdragon 8+ Gen 1",
				"ram":         "8GB",
				"storage":     "128GB",
				"main_camera": "50MP Dual Camera",
				"battery":     "4700 mAh",
				"os":          "Android 13",
			},
			Reviews: []domain.Review{
				{Text: "Unique design with glyph interface! Performance is smooth. Battery life is decent.", Rating: 4},
				{Text: "Clean software experience. Camera is good. Battery lasts all day with moderate use.", Rating: 4},
				{Text: "Glyph lights are actually useful. Gaming performance is good. Camera quality is decent.", Rating: 4},
				{Text: "Design stands out. Performance for daily use is great. Battery could be better.", Rating: 3},
			},
		},
		{
			ID: 10, Name: "Oppo Find X6", Price: 33999, OriginalPrice: 37999,
			Rating: 4.4, ReviewsCount: 1123, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.74 inch AMOLED 120Hz",
				"processor":   "Snapdragon 8 Gen 2",
				"ram":         "12GB",
				"storage":     "256GB",
				"main_camera": "50MP Hasselblad Camera",
				"battery":     "4800 mAh",
				"os":          "Android 13",
			},
			Reviews: []domain.Review{
				{Text: "Hasselblad camera is phenomenal! Colors are natural and beautiful. Battery life excellent.", Rating: 5},
				{Text: "Camera quality is professional grade. Fast charging is super quick. Gaming is smooth.", Rating: 5},
				{Text: "Best camera colors. Performance is flagship level. Battery backup is impressive.", Rating: 4},
				{Text: "Premium build and camera. Display is vibrant. Battery easily lasts full day.", Rating: 4},
			},
		},
		{
			ID: 11, Name: "Motorola Edge 40", Price: 23999, OriginalPrice: 27999,
			Rating: 4.1, ReviewsCount: 645, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.55 inch pOLED 144Hz",
				"processor":   "MediaTek Dimensity 8020",
				"ram":         "8GB",
				"storage":     "256GB",
				"main_camera": "50MP Dual Camera",
				"battery":     "4400 mAh",
				"os":          "Android 13",
			},
			Reviews: []domain.Review{
				{Text: "Curved display feels premium. Performance is snappy. Battery life is good.", Rating: 4},
				{Text: "Clean Android experience. Camera quality is decent. Gaming at 144Hz is smooth.", Rating: 4},
				{Text: "Lightweight and slim. Battery charges fast. Camera could be better in low light.", Rating: 4},
				{Text: "Good value for money. Display is excellent. Battery lasts a full day.", Rating: 4},
			},
		},
		{
			ID: 12, Name: "Asus ROG Phone 7", Price: 38999, OriginalPrice: 42999,
			Rating: 4.5, ReviewsCount: 432, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.78 inch AMOLED 165Hz",
				"processor":   "Snapdragon 8 Gen 2",
				"ram":         "16GB",
				"storage":     "512GB",
				"main_camera": "50MP Triple Camera",
				"battery":     "6000 mAh",
				"os":          "Android 13",
			},
			Reviews: []domain.Review{
				{Text: "Ultimate gaming beast! 165Hz display is incredible. Battery lasts forever even while gaming.", Rating: 5},
				{Text: "Best gaming phone period. Performance is unmatched. Battery life is exceptional.", Rating: 5},
				{Text: "Gaming triggers are amazing. Camera is surprisingly good. Battery is massive.", Rating: 5},
				{Text: "Perfect for mobile gaming. Display quality is top notch. Battery easily lasts 2 days.", Rating: 4},
			},
		},
		{
			ID: 13, Name: "Honor 90", Price: 21999, OriginalPrice: 25999,
			Rating: 4.2, ReviewsCount: 534, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.7 inch AMOLED 120Hz",
				"processor":   "Snapdragon 7 Gen 1",
				"ram":         "8GB",
				"storage":     "256GB",
				"main_camera": "200MP Triple Camera",
				"battery":     "5000 mAh",
				"os":          "Android 13",
			},
			Reviews: []domain.Review{
				{Text: "200MP camera is insane! Details are incredible. Battery life is excellent.", Rating: 5},
				{Text: "Great display and camera. Performance is good for daily use. Battery lasts long.", Rating: 4},
				{Text: "Camera quality especially in daylight is amazing. Gaming is decent. Battery backup solid.", Rating: 4},
				{Text: "Value for money. Camera is the highlight. Battery easily gets through the day.", Rating: 4},
			},
		},
		{
			ID: 14, Name: "Sony Xperia 1 V", Price: 41999, OriginalPrice: 45999,
			Rating: 4.3, ReviewsCount: 234, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.5 inch 4K OLED 120Hz",
				"processor":   "Snapdragon 8 Gen 2",
				"ram":         "12GB",
				"storage":     "256GB",
				"main_camera": "48MP Triple Camera",
				"battery":     "5000 mAh",
				"os":          "Android 13",
			},
			Reviews: []domain.Review{
				{Text: "4K display is stunning! Professional camera features. Battery life has improved a lot.", Rating: 5},
				{Text: "Best display on any phone. Camera manual controls are pro level. Battery is good.", Rating: 4},
				{Text: "Audiophile dream phone. Display and camera are exceptional. Gaming is smooth.", Rating: 5},
				{Text: "Unique 21:9 aspect ratio. Camera quality is superb. Battery lasts all day now.", Rating: 4},
			},
		},
		{
			ID: 15, Name: "Poco F5", Price: 18999, OriginalPrice: 22999,
			Rating: 4.0, ReviewsCount: 2134, Category: "electronics",
			Specifications: map[string]string{
				"display":     "6.67 inch AMOLED 120Hz",
				"processor":   "Snapdragon 7+ Gen 2",
				"ram":         "8GB",
				"storage":     "256GB",
				"main_camera": "64MP Triple Camera",
				"battery":     "5000 mAh",
				"os":          "Android 13",
			},
			Reviews: []domain.Review{
				{Text: "Best performance under 20k! Gaming is smooth at high settings. Battery life is great.", Rating: 4},
				{Text: "Value for money king. Performance punches above its weight. Battery lasts long.", Rating: 4},
				{Text: "Great for gaming on budget. Display is good. Camera is average but battery is solid.", Rating: 4},
				{Text: "Fast and smooth. Good for daily use and gaming. Battery backup is impressive.", Rating: 4},
			},
		},
	}
}
