// Package category maps category names to their display style.
package category

import "strings"

// Style is the icon and color a category is displayed with.
type Style struct {
	Icon  string `json:"icon" example:"ShoppingBag"`
	Color string `json:"color" example:"bg-green-500"`
}

// Default is the style of categories without an explicit style.
var Default = Style{Icon: "CreditCard", Color: "bg-gray-500"}

var styles = map[string]Style{
	"food & dining":  {Icon: "ShoppingBag", Color: "bg-green-500"},
	"income":         {Icon: "DollarSign", Color: "bg-blue-500"},
	"transportation": {Icon: "Car", Color: "bg-red-500"},
	"entertainment":  {Icon: "Gamepad2", Color: "bg-purple-500"},
	"utilities":      {Icon: "Home", Color: "bg-yellow-500"},
	"shopping":       {Icon: "ShoppingBag", Color: "bg-pink-500"},
	"healthcare":     {Icon: "Heart", Color: "bg-indigo-500"},
	"education":      {Icon: "GraduationCap", Color: "bg-cyan-500"},
	"travel":         {Icon: "Plane", Color: "bg-orange-500"},
	"other":          Default,
}

// Lookup returns the style of a category. Names are matched case-insensitively,
// unknown categories get Default.
func Lookup(name string) Style {
	if style, ok := styles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return style
	}
	return Default
}

// Option is a category offered when entering a transaction.
type Option struct {
	ID   string `json:"id" example:"food"`
	Name string `json:"name" example:"Food & Dining"`
	Style
}

var options = []Option{
	{"food", "Food & Dining", Style{"Utensils", "bg-orange-500"}},
	{"transport", "Transportation", Style{"Car", "bg-blue-500"}},
	{"shopping", "Shopping", Style{"ShoppingBag", "bg-green-500"}},
	{"entertainment", "Entertainment", Style{"Gamepad2", "bg-purple-500"}},
	{"utilities", "Utilities", Style{"Zap", "bg-yellow-500"}},
	{"healthcare", "Healthcare", Style{"Stethoscope", "bg-red-500"}},
	{"education", "Education", Style{"GraduationCap", "bg-indigo-500"}},
	{"travel", "Travel", Style{"Plane", "bg-cyan-500"}},
	{"gifts", "Gifts & Donations", Style{"Gift", "bg-pink-500"}},
	{"salary", "Salary", Style{"Briefcase", "bg-green-600"}},
	{"freelance", "Freelance", Style{"CreditCard", "bg-blue-600"}},
	{"investment", "Investment", Style{"TrendingUp", "bg-emerald-500"}},
	{"rent", "Rent", Style{"Home", "bg-gray-500"}},
	{"clothing", "Clothing", Style{"Shirt", "bg-violet-500"}},
	{"music", "Music & Media", Style{"Music", "bg-rose-500"}},
	{"fitness", "Fitness", Style{"Dumbbell", "bg-amber-500"}},
	{"savings", "Savings", Style{"PiggyBank", "bg-teal-500"}},
	{"business", "Business", Style{"Building", "bg-slate-500"}},
	{"fuel", "Fuel", Style{"Fuel", "bg-stone-500"}},
	{"phone", "Phone & Internet", Style{"Phone", "bg-sky-500"}},
	{"coffee", "Coffee & Snacks", Style{"Coffee", "bg-orange-600"}},
	{"other", "Other", Style{"Tag", "bg-gray-600"}},
}

// Options returns the categories offered when entering a transaction.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Palette is the sequence of chart colors assigned to categories by rank.
var Palette = []string{
	"#10B981", "#3B82F6", "#EF4444", "#8B5CF6",
	"#F59E0B", "#EC4899", "#6366F1", "#06B6D4",
	"#F97316", "#6B7280",
}

// ChartColor returns the palette color for the i-th category, wrapping around.
func ChartColor(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}
