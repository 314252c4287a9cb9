package service

// Word lists used by the development seeder.

var ingredientCategories = [][]string{
	// produce
	{"tomato", "lettuce", "onion", "garlic", "potato", "carrot", "celery", "bell pepper", "cucumber", "zucchini",
		"spinach", "kale", "broccoli", "cauliflower", "mushroom", "avocado", "lemon", "lime", "apple", "banana"},
	// dairy
	{"milk", "butter", "cream", "yogurt", "sour cream", "cheddar cheese", "mozzarella cheese", "parmesan cheese",
		"feta cheese", "cream cheese", "ricotta cheese", "goat cheese"},
	// meat
	{"chicken breast", "chicken thigh", "ground beef", "beef steak", "pork chop", "bacon", "sausage", "ham", "lamb",
		"turkey", "ground turkey"},
	// seafood
	{"salmon", "tuna", "shrimp", "cod", "tilapia", "crab", "lobster", "mussels", "clams", "scallops"},
	// grains
	{"rice", "pasta", "flour", "bread", "quinoa", "couscous", "oats", "cornmeal", "breadcrumbs", "tortilla"},
	// spices
	{"salt", "black pepper", "paprika", "cumin", "oregano", "basil", "thyme", "rosemary", "cinnamon", "nutmeg",
		"ginger", "turmeric", "chili powder", "cayenne pepper", "red pepper flakes", "bay leaf", "parsley",
		"cilantro", "dill", "sage"},
	// condiments
	{"olive oil", "vegetable oil", "soy sauce", "vinegar", "balsamic vinegar", "mustard", "ketchup", "mayonnaise",
		"hot sauce", "worcestershire sauce", "fish sauce", "sesame oil", "honey", "maple syrup", "sugar", "brown sugar"},
	// baking
	{"baking powder", "baking soda", "vanilla extract", "cocoa powder", "chocolate chips", "powdered sugar",
		"cornstarch", "yeast"},
	// canned
	{"tomato paste", "tomato sauce", "diced tomatoes", "chicken broth", "beef broth", "vegetable broth",
		"coconut milk", "beans", "chickpeas", "corn"},
	// nuts
	{"almonds", "walnuts", "pecans", "peanuts", "cashews", "pine nuts", "pistachios"},
}

// ingredientQualifiers extend the base list when more ingredients are needed
var ingredientQualifiers = []string{
	"fresh", "dried", "smoked", "roasted", "toasted", "pickled", "frozen", "organic", "shredded", "candied",
}

var seedTagNames = []string{
	// cuisines
	"Italian", "Mexican", "Chinese", "Japanese", "Thai", "Indian", "French", "Greek", "Mediterranean", "American",
	"Korean", "Vietnamese",
	// meals
	"Breakfast", "Lunch", "Dinner", "Appetizer", "Dessert", "Snack", "Soup", "Salad", "Side Dish",
	// diets
	"Vegetarian", "Vegan", "Gluten-Free", "Dairy-Free", "Low-Carb", "Keto", "Paleo", "Healthy",
	// methods
	"Grilled", "Baked", "Fried", "Slow Cooker", "Instant Pot", "One Pot", "No-Bake",
	// occasions
	"Holiday", "Party", "Kid-Friendly", "Quick & Easy", "Comfort Food",
}

var (
	dishTypes = []string{"Pasta", "Soup", "Salad", "Stir-Fry", "Casserole", "Curry", "Tacos", "Pizza", "Burger",
		"Sandwich", "Bowl", "Skillet"}
	proteins = []string{"Chicken", "Beef", "Pork", "Shrimp", "Salmon", "Tofu", "Turkey", "Lamb"}
	flavors  = []string{"Spicy", "Garlic", "Lemon", "Herb", "Creamy", "Tangy", "Sweet", "Savory", "BBQ", "Teriyaki",
		"Mediterranean", "Asian-Style"}
)

var descriptionTemplates = []string{
	"A delicious %s that's perfect for any occasion. %s",
	"This %s is a family favorite. %s",
	"Quick and easy %s recipe. %s",
	"Restaurant-quality %s made at home. %s",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit", "sed", "do", "eiusmod",
	"tempor", "incididunt", "ut", "labore", "et", "dolore", "magna", "aliqua", "enim", "ad", "minim", "veniam",
	"quis", "nostrud", "exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate", "velit", "esse", "cillum",
	"fugiat", "nulla", "pariatur", "excepteur", "sint", "occaecat", "cupidatat", "non", "proident", "sunt",
	"culpa", "qui", "officia", "deserunt", "mollit", "anim", "id", "est", "laborum",
}
