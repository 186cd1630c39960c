// Package wordbank is the static theme word bank: a theme name maps to a
// per-language list of candidate secret words.
package wordbank

import (
	"math/rand/v2"
	"slices"
)

// Supported language codes.
const (
	LangEN = "en"
	LangBG = "bg"
)

// Entry holds one theme's word lists per language.
type Entry map[string][]string

// Themes is the full bank, keyed by theme name.
var Themes = map[string]Entry{
	"Objects": {
		LangEN: {
			"Chair", "Table", "Lamp", "Mirror", "Bottle", "Backpack", "Book", "Phone",
			"Laptop", "Glasses", "Watch", "Pen", "Pencil", "Key", "Wallet", "Bed",
			"Spoon", "Fork", "Knife", "TV", "Remote", "Headphones", "Towel", "Shoe",
		},
		LangBG: {
			"Стол", "Маса", "Лампа", "Огледало", "Бутилка", "Раница", "Книга", "Телефон",
			"Лаптоп", "Очила", "Часовник", "Химикалка", "Молив", "Ключ", "Портфейл", "Легло",
			"Лъжица", "Вилица", "Нож", "Телевизор", "Дистанционно", "Слушалки", "Кърпа", "Обувка",
		},
	},
	"Movies": {
		LangEN: {
			"Inception", "Titanic", "The Godfather", "Avatar", "The Dark Knight", "Interstellar",
			"Jurassic Park", "The Matrix", "Star Wars", "Avengers", "Frozen", "Gladiator",
			"Shrek", "Finding Nemo", "Toy Story", "The Lion King", "Forrest Gump", "Pulp Fiction",
		},
		LangBG: {
			"Генезис", "Титаник", "Кръстникът", "Аватар", "Черният рицар", "Интерстелар",
			"Джурасик парк", "Матрицата", "Междузвездни войни", "Отмъстителите", "Замръзналото кралство", "Гладиатор",
			"Шрек", "Търсенето на Немо", "Играта на играчките", "Цар Лъв", "Форест Гъмп", "Криминале",
		},
	},
	"People": {
		LangEN: {
			"Albert Einstein", "Elon Musk", "Oprah Winfrey", "Michael Jordan", "Taylor Swift",
			"Cristiano Ronaldo", "Barack Obama", "Leonardo da Vinci", "Beyoncé", "Usain Bolt",
			"Lionel Messi", "Bill Gates", "Steve Jobs", "Lady Gaga", "Tom Hanks",
		},
		LangBG: {
			"Алберт Айнщайн", "Илон Мъск", "Опра Уинфри", "Майкъл Джордан", "Тейлър Суифт",
			"Кристиано Роналдо", "Барак Обама", "Леонардо да Винчи", "Бионсе", "Юсейн Болт",
			"Лионел Меси", "Бил Гейтс", "Стив Джобс", "Лейди Гага", "Том Ханкс",
		},
	},
	"Fruits": {
		LangEN: {
			"Apple", "Banana", "Orange", "Grape", "Mango", "Pear", "Peach", "Strawberry",
			"Blueberry", "Watermelon", "Pineapple", "Kiwi", "Papaya", "Cherry", "Plum",
		},
		LangBG: {
			"Ябълка", "Банан", "Портокал", "Грозде", "Манго", "Круша", "Праскова", "Ягода",
			"Боровинка", "Диня", "Ананас", "Киви", "Папая", "Череша", "Слива",
		},
	},
	"Animals": {
		LangEN: {
			"Dog", "Cat", "Elephant", "Lion", "Tiger", "Zebra", "Horse", "Monkey", "Kangaroo",
			"Giraffe", "Bear", "Wolf", "Panda", "Fox", "Rabbit", "Dolphin", "Shark", "Whale",
		},
		LangBG: {
			"Куче", "Котка", "Слон", "Лъв", "Тигър", "Зебра", "Кон", "Маймуна", "Кенгуру",
			"Жираф", "Мечка", "Вълк", "Панда", "Лисица", "Заек", "Делфин", "Акула", "Кит",
		},
	},
	"Countries": {
		LangEN: {
			"France", "Germany", "Italy", "Spain", "Japan", "Brazil", "Canada", "Egypt",
			"India", "China", "Australia", "Mexico", "Russia", "Argentina", "South Africa",
		},
		LangBG: {
			"Франция", "Германия", "Италия", "Испания", "Япония", "Бразилия", "Канада", "Египет",
			"Индия", "Китай", "Австралия", "Мексико", "Русия", "Аржентина", "Южна Африка",
		},
	},
	"Sports": {
		LangEN: {
			"Football", "Basketball", "Tennis", "Cricket", "Hockey", "Rugby", "Baseball",
			"Golf", "Boxing", "MMA", "Cycling", "Swimming", "Running", "Skiing", "Volleyball",
		},
		LangBG: {
			"Футбол", "Баскетбол", "Тенис", "Крикет", "Хокей", "Ръгби", "Бейзбол",
			"Голф", "Бокс", "ММА", "Колоездене", "Плуване", "Бягане", "Ски", "Волейбол",
		},
	},
	"Foods": {
		LangEN: {
			"Pizza", "Burger", "Pasta", "Sushi", "Steak", "Salad", "Soup", "Sandwich",
			"Tacos", "Ice Cream", "Chocolate", "Cheese", "Rice", "Curry", "Noodles", "Dumplings",
		},
		LangBG: {
			"Пица", "Бургер", "Паста", "Суши", "Стек", "Салата", "Супа", "Сандвич",
			"Такос", "Сладолед", "Шоколад", "Сирене", "Ориз", "Къри", "Нудли", "Кнедли",
		},
	},
	"Brands": {
		LangEN: {
			"Nike", "Adidas", "Apple", "Samsung", "Google", "Microsoft", "Coca-Cola",
			"Pepsi", "Toyota", "BMW", "Mercedes", "Sony", "Amazon", "McDonald's", "Starbucks",
		},
		LangBG: {
			"Nike", "Adidas", "Apple", "Samsung", "Google", "Microsoft", "Coca-Cola",
			"Pepsi", "Toyota", "BMW", "Mercedes", "Sony", "Amazon", "McDonald's", "Starbucks",
		},
	},
	"Cities": {
		LangEN: {
			"New York", "London", "Paris", "Tokyo", "Los Angeles", "Berlin", "Rome", "Dubai",
			"Moscow", "Shanghai", "Barcelona", "Sydney", "Istanbul", "Toronto", "Mumbai",
		},
		LangBG: {
			"Ню Йорк", "Лондон", "Париж", "Токио", "Лос Анджелис", "Берлин", "Рим", "Дубай",
			"Москва", "Шанхай", "Барселона", "Сидни", "Истанбул", "Торонто", "Мумбай",
		},
	},
	"Books": {
		LangEN: {
			"Harry Potter", "The Hobbit", "The Lord of the Rings", "Pride and Prejudice",
			"1984", "The Great Gatsby", "Moby Dick", "To Kill a Mockingbird",
			"The Catcher in the Rye", "The Da Vinci Code", "The Alchemist", "Dracula",
		},
		LangBG: {
			"Хари Потър", "Хобитът", "Властелинът на пръстените", "Гордост и предразсъдъци",
			"1984", "Великият Гетсби", "Моби Дик", "Да убиеш присмехулник",
			"Спасителят в ръжта", "Шифърът на Леонардо", "Алхимикът", "Дракула",
		},
	},
	"TV Shows": {
		LangEN: {
			"Friends", "Breaking Bad", "Game of Thrones", "Stranger Things", "The Office",
			"Sherlock", "The Simpsons", "How I Met Your Mother", "The Crown", "Peaky Blinders",
			"House of the Dragon", "Modern Family", "Lost", "Seinfeld",
		},
		LangBG: {
			"Приятели", "В обувките на Сатаната", "Игра на тронове", "Странни неща", "Офисът",
			"Шерлок", "Семейство Симпсън", "Как се запознах с майка ви", "Короната", "Остри козирки",
			"Домът на дракона", "Модерно семейство", "Изгубени", "Сайнфелд",
		},
	},
	"Jobs": {
		LangEN: {
			"Doctor", "Teacher", "Engineer", "Chef", "Pilot", "Farmer", "Artist", "Nurse",
			"Scientist", "Lawyer", "Actor", "Singer", "Writer", "Athlete", "Police Officer",
		},
		LangBG: {
			"Лекар", "Учител", "Инженер", "Готвач", "Пилот", "Фермер", "Артист", "Медицинска сестра",
			"Учен", "Адвокат", "Актьор", "Певец", "Писател", "Спортист", "Полицай",
		},
	},
	"Instruments": {
		LangEN: {
			"Guitar", "Piano", "Drums", "Violin", "Flute", "Trumpet", "Saxophone", "Cello",
			"Harp", "Clarinet", "Trombone", "Ukulele", "Accordion", "Banjo",
		},
		LangBG: {
			"Китара", "Пиано", "Барабани", "Цигулка", "Флейта", "Тромпет", "Саксофон", "Виолончело",
			"Арфа", "Кларинет", "Тромбон", "Укулеле", "Акордеон", "Банджо",
		},
	},
	"Colors": {
		LangEN: {
			"Red", "Blue", "Green", "Yellow", "Purple", "Orange", "Black", "White",
			"Pink", "Brown", "Gray", "Turquoise", "Gold", "Silver",
		},
		LangBG: {
			"Червен", "Син", "Зелен", "Жълт", "Лилав", "Оранжев", "Черен", "Бял",
			"Розов", "Кафяв", "Сив", "Тюркоаз", "Златен", "Сребърен",
		},
	},
	"Vehicles": {
		LangEN: {
			"Car", "Bus", "Train", "Bicycle", "Plane", "Boat", "Truck", "Helicopter",
			"Scooter", "Motorcycle", "Submarine", "Tram", "Spaceship",
		},
		LangBG: {
			"Кола", "Автобус", "Влак", "Велосипед", "Самолет", "Лодка", "Камион", "Хеликоптер",
			"Скутер", "Мотоциклет", "Подводница", "Трамвай", "Космически кораб",
		},
	},
}

// ThemeNames returns the available theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Languages returns the supported language codes.
func Languages() []string {
	return []string{LangEN, LangBG}
}

// Words returns the word list for a theme and language, or nil if the
// combination is unknown.
func Words(theme, lang string) []string {
	entry, ok := Themes[theme]
	if !ok {
		return nil
	}
	return entry[lang]
}

// Has reports whether the theme/language combination exists.
func Has(theme, lang string) bool {
	return len(Words(theme, lang)) > 0
}

// Pick draws one word uniformly at random, or "" for an unknown
// combination.
func Pick(theme, lang string) string {
	words := Words(theme, lang)
	if len(words) == 0 {
		return ""
	}
	return words[rand.IntN(len(words))]
}
