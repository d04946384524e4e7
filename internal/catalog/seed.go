package catalog

// Seed returns the compiled-in product catalog. IDs are numeric strings;
// "newest" sorting parses them as integers, so keep them that way.
func Seed() []Product {
	return []Product{
		{
			ID: "1", Title: "FrostLine ProCool 1.5 Ton Split AC", Brand: "FrostLine",
			Category: "Air Conditioners", Description: "5-star inverter split AC with copper condenser and dual filtration.",
			Price: 38990, MRP: 46990, DiscountPct: 10, Rating: 4.3, ReviewsCount: 412,
			Image:    "/images/products/procool-split-ac.jpg",
			Images:   []string{"/images/products/procool-split-ac.jpg", "/images/products/procool-split-ac-side.jpg"},
			Features: []string{"Inverter compressor", "Copper condenser", "Turbo cool mode"},
			Specs:    map[string]string{"Capacity": "1.5 Ton", "Energy Rating": "5 Star", "Warranty": "10 years on compressor"},
			Tags:     []string{"ac", "cooling", "inverter", "split"},
			InStock:  true,
		},
		{
			ID: "2", Title: "FrostLine WindowBreeze 1 Ton Window AC", Brand: "FrostLine",
			Category: "Air Conditioners", Description: "Compact window AC for small rooms with auto-restart.",
			Price: 24990, MRP: 28990, DiscountPct: 5, Rating: 3.9, ReviewsCount: 188,
			Image:   "/images/products/windowbreeze-ac.jpg",
			Specs:   map[string]string{"Capacity": "1 Ton", "Energy Rating": "3 Star"},
			Tags:    []string{"ac", "cooling", "window"},
			InStock: true,
		},
		{
			ID: "3", Title: "ChillMax 260L Double Door Refrigerator", Brand: "ChillMax",
			Category: "Refrigerators", Description: "Frost-free double door fridge with vegetable crisper and toughened glass shelves.",
			Price: 27490, MRP: 31990, DiscountPct: 8, Rating: 4.5, ReviewsCount: 673,
			Image:    "/images/products/chillmax-260l.jpg",
			Features: []string{"Frost free", "Stabilizer free operation", "LED lighting"},
			Specs:    map[string]string{"Capacity": "260 L", "Energy Rating": "3 Star"},
			Tags:     []string{"fridge", "refrigerator", "double door"},
			InStock:  true,
		},
		{
			ID: "4", Title: "ChillMax Mini 95L Single Door Refrigerator", Brand: "ChillMax",
			Category: "Refrigerators", Description: "Bedroom-sized single door fridge, quiet compressor.",
			Price: 10990, MRP: 12490, DiscountPct: 0, Rating: 4.1, ReviewsCount: 97,
			Image:   "/images/products/chillmax-mini-95l.jpg",
			Specs:   map[string]string{"Capacity": "95 L"},
			Tags:    []string{"fridge", "refrigerator", "mini"},
			InStock: false,
		},
		{
			ID: "5", Title: "AquaSpin 7kg Front Load Washing Machine", Brand: "AquaSpin",
			Category: "Washing Machines", Description: "Fully automatic front load with steam wash and inverter motor.",
			Price: 32990, MRP: 39990, DiscountPct: 12, Rating: 4.6, ReviewsCount: 534,
			Image:    "/images/products/aquaspin-front-7kg.jpg",
			Features: []string{"Steam wash", "Inverter motor", "Child lock"},
			Specs:    map[string]string{"Capacity": "7 kg", "Type": "Front load"},
			Tags:     []string{"washing machine", "laundry", "front load"},
			InStock:  true,
		},
		{
			ID: "6", Title: "AquaSpin 6.5kg Top Load Washing Machine", Brand: "AquaSpin",
			Category: "Washing Machines", Description: "Top load washer with hard-water wash program.",
			Price: 17490, MRP: 19990, DiscountPct: 6, Rating: 4.0, ReviewsCount: 301,
			Image:   "/images/products/aquaspin-top-65kg.jpg",
			Specs:   map[string]string{"Capacity": "6.5 kg", "Type": "Top load"},
			Tags:    []string{"washing machine", "laundry", "top load"},
			InStock: true,
		},
		{
			ID: "7", Title: "VistaView 55\" 4K Smart LED TV", Brand: "VistaView",
			Category: "Televisions", Description: "55 inch 4K UHD smart TV with Dolby Vision and built-in voice assistant.",
			Price: 42990, MRP: 54990, DiscountPct: 15, Rating: 4.7, ReviewsCount: 892,
			Image:    "/images/products/vistaview-55-4k.jpg",
			Features: []string{"Dolby Vision", "Voice remote", "Dual-band WiFi"},
			Specs:    map[string]string{"Screen Size": "55 inch", "Resolution": "4K UHD"},
			Tags:     []string{"tv", "television", "smart tv", "4k"},
			InStock:  true,
		},
		{
			ID: "8", Title: "VistaView 43\" Full HD Smart TV", Brand: "VistaView",
			Category: "Televisions", Description: "43 inch Full HD smart TV for everyday viewing.",
			Price: 23990, MRP: 27990, DiscountPct: 7, Rating: 4.2, ReviewsCount: 445,
			Image:   "/images/products/vistaview-43-fhd.jpg",
			Specs:   map[string]string{"Screen Size": "43 inch", "Resolution": "Full HD"},
			Tags:    []string{"tv", "television", "smart tv"},
			InStock: true,
		},
		{
			ID: "9", Title: "HeatWave 25L Solo Microwave Oven", Brand: "HeatWave",
			Category: "Kitchen Appliances", Description: "25 litre solo microwave with 5 power levels and auto-cook menus.",
			Price: 6490, MRP: 7990, DiscountPct: 10, Rating: 3.8, ReviewsCount: 156,
			Image:   "/images/products/heatwave-solo-25l.jpg",
			Specs:   map[string]string{"Capacity": "25 L", "Type": "Solo"},
			Tags:    []string{"microwave", "oven", "kitchen"},
			InStock: true,
		},
		{
			ID: "10", Title: "HeatWave ConvectPro 32L Convection Oven", Brand: "HeatWave",
			Category: "Kitchen Appliances", Description: "Convection microwave for baking and grilling, stainless cavity.",
			Price: 13990, MRP: 16490, DiscountPct: 9, Rating: 4.4, ReviewsCount: 238,
			Image:    "/images/products/heatwave-convectpro-32l.jpg",
			Features: []string{"Convection and grill", "Stainless cavity", "Child lock"},
			Specs:    map[string]string{"Capacity": "32 L", "Type": "Convection"},
			Tags:     []string{"microwave", "oven", "convection", "kitchen"},
			InStock:  false,
		},
		{
			ID: "11", Title: "PureAir Tower Air Purifier", Brand: "PureAir",
			Category: "Air Purifiers", Description: "HEPA H13 purifier for rooms up to 500 sq ft with air-quality display.",
			Price: 9990, MRP: 12990, DiscountPct: 18, Rating: 4.5, ReviewsCount: 367,
			Image:    "/images/products/pureair-tower.jpg",
			Features: []string{"HEPA H13 filter", "PM2.5 display", "Sleep mode"},
			Specs:    map[string]string{"Coverage": "500 sq ft"},
			Tags:     []string{"air purifier", "hepa", "clean air"},
			InStock:  true,
		},
		{
			ID: "12", Title: "AquaSpin DishPro 12 Place Dishwasher", Brand: "AquaSpin",
			Category: "Kitchen Appliances", Description: "12 place-setting dishwasher with intensive wash for oily utensils.",
			Price: 28990, MRP: 34990, DiscountPct: 11, Rating: 4.3, ReviewsCount: 129,
			Image:   "/images/products/aquaspin-dishpro.jpg",
			Specs:   map[string]string{"Place Settings": "12", "Programs": "6"},
			Tags:    []string{"dishwasher", "kitchen"},
			InStock: true,
		},
	}
}
