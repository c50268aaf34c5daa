package catalog

import (
	"fmt"
	"strconv"
)

var padColors = []string{
	"#FFCDD2", "#F8BBD0", "#E1BEE7", "#D1C4E9", "#C5CAE9", "#BBDEFB", "#B3E5FC", "#B2EBF2",
	"#B2DFDB", "#C8E6C9", "#DCEDC8", "#F1F8E9", "#FFF9C4", "#FFECB3", "#FFE0B2", "#FFCCBC",
}

var padImages = []string{"🌟", "✨", "🎈", "🎨", "🧸", "🍭", "🌈", "🍦", "🌞"}

// padTo fills items up to n entries with numbered filler cards
func padTo(items []LearningItem, n int, baseID, baseName, image string) []LearningItem {
	result := append([]LearningItem(nil), items...)
	for len(result) < n {
		i := len(result) + 1
		img := image
		if img == "" {
			img = padImages[i%len(padImages)]
		}
		result = append(result, LearningItem{
			ID:    fmt.Sprintf("%s-%d", baseID, i),
			Name:  fmt.Sprintf("%s %d", baseName, i),
			Image: img,
			Color: padColors[i%len(padColors)],
		})
	}
	return result
}

func numbers(max int) []LearningItem {
	items := make([]LearningItem, 0, max)
	for i := 1; i <= max; i++ {
		s := strconv.Itoa(i)
		items = append(items, LearningItem{ID: "num-" + s, Name: s, Image: s, Color: "#4FC3F7"})
	}
	return items
}

// Default returns the built-in catalog. Each call returns a fresh copy.
func Default() []Category {
	return []Category{
		{
			ID: Alphabet, Name: "Alphabet", Icon: "🔤", Color: "red",
			Items: padTo([]LearningItem{
				{ID: "a", Name: "Apple", Image: "🍎", Color: "#FF5252"},
				{ID: "b", Name: "Ball", Image: "⚽", Color: "#448AFF"},
				{ID: "c", Name: "Cat", Image: "🐱", Color: "#FFD740"},
				{ID: "d", Name: "Dog", Image: "🐶", Color: "#8D6E63"},
				{ID: "e", Name: "Elephant", Image: "🐘", Color: "#90A4AE"},
			}, 50, "alphabet", "Object", "✨"),
		},
		{ID: Numbers, Name: "Numbers 1-100", Icon: "🔢", Color: "blue", Items: numbers(100)},
		{
			ID: Flowers, Name: "Flowers (Phool)", Icon: "🌸", Color: "pink",
			Items: []LearningItem{
				{ID: "rose", Name: "Rose (Gulaab)", Image: "🌹", Color: "#F44336"},
				{ID: "sunflower", Name: "Sunflower (Surajmukhi)", Image: "🌻", Color: "#FFEB3B"},
				{ID: "lotus", Name: "Lotus (Kamal)", Image: "🪷", Color: "#F8BBD0"},
				{ID: "lily", Name: "Lily (Kumudini)", Image: "🪻", Color: "#E1BEE7"},
				{ID: "tulip", Name: "Tulip", Image: "🌷", Color: "#F06292"},
				{ID: "daisy", Name: "Daisy", Image: "🌼", Color: "#FFF9C4"},
				{ID: "hibiscus", Name: "Hibiscus (Gudhal)", Image: "🌺", Color: "#E91E63"},
				{ID: "jasmine", Name: "Jasmine (Chameli)", Image: "✨", Color: "#FFFFFF"},
				{ID: "marigold", Name: "Marigold (Genda)", Image: "🏵️", Color: "#FF9800"},
				{ID: "orchid", Name: "Orchid", Image: "💐", Color: "#BA68C8"},
				{ID: "lavender", Name: "Lavender", Image: "🌿", Color: "#9575CD"},
				{ID: "dahlia", Name: "Dahlia", Image: "💮", Color: "#D81B60"},
			},
		},
		{
			ID: Birds, Name: "Birds (Pakshi)", Icon: "🐦", Color: "sky",
			Items: []LearningItem{
				{ID: "parrot", Name: "Parrot (Tota)", Image: "🦜", Color: "#4CAF50", SoundPhonetic: "Mithu Mithu"},
				{ID: "peacock", Name: "Peacock (Mor)", Image: "🦚", Color: "#009688", SoundPhonetic: "Piyu Piyu"},
				{ID: "owl", Name: "Owl (Ullu)", Image: "🦉", Color: "#795548", SoundPhonetic: "Hoot hoot"},
				{ID: "eagle", Name: "Eagle (Baaz)", Image: "🦅", Color: "#A1887F", SoundPhonetic: "Screee"},
				{ID: "sparrow", Name: "Sparrow (Chidiya)", Image: "🐦", Color: "#BDBDBD", SoundPhonetic: "Cheep cheep"},
				{ID: "pigeon", Name: "Pigeon (Kabutar)", Image: "🕊️", Color: "#90A4AE", SoundPhonetic: "Gutur gu"},
				{ID: "duck", Name: "Duck (Battakh)", Image: "🦆", Color: "#FFEB3B", SoundPhonetic: "Quack quack"},
				{ID: "crow", Name: "Crow (Kauwa)", Image: "🐦‍⬛", Color: "#424242", SoundPhonetic: "Caw caw"},
				{ID: "penguin", Name: "Penguin", Image: "🐧", Color: "#E0E0E0", SoundPhonetic: "Honk honk"},
				{ID: "swan", Name: "Swan (Hans)", Image: "🦢", Color: "#FFFFFF", SoundPhonetic: "Screech"},
			},
		},
		{
			ID: Insects, Name: "Insects (Keede)", Icon: "🐜", Color: "lime",
			Items: []LearningItem{
				{ID: "butterfly", Name: "Butterfly (Titli)", Image: "🦋", Color: "#F06292"},
				{ID: "bee", Name: "Honey Bee (Madhumakhi)", Image: "🐝", Color: "#FFEB3B", SoundPhonetic: "Bzzzzzz"},
				{ID: "ant", Name: "Ant (Chinti)", Image: "🐜", Color: "#795548"},
				{ID: "ladybug", Name: "Ladybug", Image: "🐞", Color: "#F44336"},
				{ID: "spider", Name: "Spider (Makdi)", Image: "🕷️", Color: "#424242"},
				{ID: "mosquito", Name: "Mosquito (Machhar)", Image: "🦟", Color: "#9E9E9E", SoundPhonetic: "Eeeeeee"},
				{ID: "grasshopper", Name: "Grasshopper", Image: "🦗", Color: "#8BC34A"},
				{ID: "dragonfly", Name: "Dragonfly", Image: "🧚", Color: "#00BCD4"},
			},
		},
		{
			ID: Days, Name: "Days (Din)", Icon: "📅", Color: "yellow",
			Items: []LearningItem{
				{ID: "mon", Name: "Monday", Image: "🌙", Color: "#FFCDD2"},
				{ID: "tue", Name: "Tuesday", Image: "🔥", Color: "#F8BBD0"},
				{ID: "wed", Name: "Wednesday", Image: "🧠", Color: "#E1BEE7"},
				{ID: "thu", Name: "Thursday", Image: "⚡", Color: "#D1C4E9"},
				{ID: "fri", Name: "Friday", Image: "💖", Color: "#C5CAE9"},
				{ID: "sat", Name: "Saturday", Image: "🪐", Color: "#BBDEFB"},
				{ID: "sun", Name: "Sunday", Image: "☀️", Color: "#FFF59D"},
			},
		},
		{
			ID: Months, Name: "Months (Mahine)", Icon: "📆", Color: "indigo",
			Items: []LearningItem{
				{ID: "jan", Name: "January", Image: "❄️", Color: "#E3F2FD"},
				{ID: "feb", Name: "February", Image: "💖", Color: "#FCE4EC"},
				{ID: "mar", Name: "March", Image: "🍀", Color: "#E8F5E9"},
				{ID: "apr", Name: "April", Image: "☔", Color: "#F3E5F5"},
				{ID: "may", Name: "May", Image: "🌸", Color: "#FFF3E0"},
				{ID: "jun", Name: "June", Image: "☀️", Color: "#FFFDE7"},
				{ID: "jul", Name: "July", Image: "🍦", Color: "#E1F5FE"},
				{ID: "aug", Name: "August", Image: "⛱️", Color: "#E0F2F1"},
				{ID: "sep", Name: "September", Image: "🍎", Color: "#FFEBEE"},
				{ID: "oct", Name: "October", Image: "🎃", Color: "#FFF3E0"},
				{ID: "nov", Name: "November", Image: "🍂", Color: "#EFEBE9"},
				{ID: "dec", Name: "December", Image: "🎄", Color: "#E8F5E9"},
			},
		},
		{
			ID: Rhymes, Name: "Rhymes (Kavita)", Icon: "🎶", Color: "purple",
			Items: []LearningItem{
				{ID: "twinkle", Name: "Twinkle Twinkle", Image: "✨", Color: "#1A237E",
					AudioText: "Twinkle twinkle little star, How I wonder what you are! Up above the world so high, Like a diamond in the sky!"},
				{ID: "bus", Name: "Wheels on the Bus", Image: "🚌", Color: "#FDD835",
					AudioText: "The wheels on the bus go round and round, Round and round, round and round. The wheels on the bus go round and round, All through the town!"},
				{ID: "johny", Name: "Johny Johny", Image: "👶", Color: "#FFCCBC",
					AudioText: "Johny Johny, Yes Papa? Eating sugar? No Papa! Telling lies? No Papa! Open your mouth, Ha! Ha! Ha!"},
				{ID: "rain", Name: "Rain Rain", Image: "☔", Color: "#4FC3F7",
					AudioText: "Rain, rain, go away, Come again another day, Little Johnny wants to play. Rain, rain, go away!"},
				{ID: "baa", Name: "Baa Baa Black Sheep", Image: "🐑", Color: "#424242",
					AudioText: "Baa, baa, black sheep, Have you any wool? Yes sir, yes sir, Three bags full!"},
			},
		},
		{
			ID: FarmAnimals, Name: "Farm Animals", Icon: "🚜", Color: "yellow",
			Items: []LearningItem{
				{ID: "cow", Name: "Cow", Image: "🐮", Color: "#FFFFFF", SoundPhonetic: "Mooooo"},
				{ID: "pig", Name: "Pig", Image: "🐷", Color: "#F8BBD0", SoundPhonetic: "Oink oink oink"},
				{ID: "sheep", Name: "Sheep", Image: "🐑", Color: "#F5F5F5", SoundPhonetic: "Baaaaa baaaaa"},
			},
		},
		{
			ID: WildAnimals, Name: "Wild Animals", Icon: "🦁", Color: "orange",
			Items: []LearningItem{
				{ID: "lion", Name: "Lion", Image: "🦁", Color: "#FFB300", SoundPhonetic: "Roarrrrrr"},
				{ID: "tiger", Name: "Tiger", Image: "🐯", Color: "#FF7043", SoundPhonetic: "Grrrrrrr roar"},
				{ID: "monkey", Name: "Monkey", Image: "🐵", Color: "#8D6E63", SoundPhonetic: "Ooh ooh aah aah"},
			},
		},
	}
}
