package models

// DefaultCategories returns the seed category catalog. Callers decide whether
// to use it; the engine itself never falls back to this list implicitly, it
// only ever works on the catalog it is handed.
func DefaultCategories() []Category {
	return []Category{
		{
			ID: "1", Name: "Food", Icon: "🍔", Color: "#ef4444",
			Keywords: []string{
				"zomato", "swiggy", "dominos", "mcdonald", "kfc", "subway",
				"pizza", "burger", "dunzo", "bigbasket", "grofers", "grocery",
				"restaurant", "cafe", "dine", "eat",
			},
		},
		{
			ID: "2", Name: "Travel", Icon: "🚗", Color: "#3b82f6",
			Keywords: []string{
				"uber", "ola", "rapido", "irctc", "redbus", "makemytrip",
				"goibibo", "metro", "taxi", "cab", "bus", "train", "flight",
				"hotel",
			},
		},
		{
			ID: "3", Name: "Shopping", Icon: "🛍️", Color: "#f59e0b",
			Keywords: []string{
				"amazon", "flipkart", "myntra", "ajio", "nykaa", "meesho",
				"snapdeal", "decathlon", "mall", "store", "shopping", "retail",
				"mart",
			},
		},
		{
			ID: "4", Name: "Bills", Icon: "💡", Color: "#10b981",
			Keywords: []string{
				"airtel", "jio", "bsnl", "vodafone", "electricity", "water",
				"gas", "internet", "mobile", "recharge", "bill",
			},
		},
		{
			ID: "5", Name: "Subscriptions", Icon: "📱", Color: "#8b5cf6",
			Keywords: []string{
				"netflix", "youtube premium", "spotify", "hotstar",
				"prime video", "subscription", "membership",
			},
		},
		{
			ID: "6", Name: FallbackCategoryName, Icon: "📦", Color: "#6b7280",
		},
	}
}
