package generators

type usState struct {
	name string
	abbr string
}

var usStates = []usState{
	{"Alabama", "AL"}, {"Alaska", "AK"}, {"Arizona", "AZ"}, {"Arkansas", "AR"}, {"California", "CA"},
	{"Colorado", "CO"}, {"Connecticut", "CT"}, {"Delaware", "DE"}, {"Florida", "FL"}, {"Georgia", "GA"},
	{"Hawaii", "HI"}, {"Idaho", "ID"}, {"Illinois", "IL"}, {"Indiana", "IN"}, {"Iowa", "IA"},
	{"Kansas", "KS"}, {"Kentucky", "KY"}, {"Louisiana", "LA"}, {"Maine", "ME"}, {"Maryland", "MD"},
	{"Massachusetts", "MA"}, {"Michigan", "MI"}, {"Minnesota", "MN"}, {"Mississippi", "MS"}, {"Missouri", "MO"},
	{"Montana", "MT"}, {"Nebraska", "NE"}, {"Nevada", "NV"}, {"New Hampshire", "NH"}, {"New Jersey", "NJ"},
	{"New Mexico", "NM"}, {"New York", "NY"}, {"North Carolina", "NC"}, {"North Dakota", "ND"}, {"Ohio", "OH"},
	{"Oklahoma", "OK"}, {"Oregon", "OR"}, {"Pennsylvania", "PA"}, {"Rhode Island", "RI"}, {"South Carolina", "SC"},
	{"South Dakota", "SD"}, {"Tennessee", "TN"}, {"Texas", "TX"}, {"Utah", "UT"}, {"Vermont", "VT"},
	{"Virginia", "VA"}, {"Washington", "WA"}, {"West Virginia", "WV"}, {"Wisconsin", "WI"}, {"Wyoming", "WY"},
}

type country struct {
	name string
	code string
}

var countries = []country{
	{"Argentina", "AR"}, {"Australia", "AU"}, {"Austria", "AT"}, {"Belgium", "BE"}, {"Brazil", "BR"},
	{"Canada", "CA"}, {"Chile", "CL"}, {"China", "CN"}, {"Colombia", "CO"}, {"Czech Republic", "CZ"},
	{"Denmark", "DK"}, {"Egypt", "EG"}, {"Finland", "FI"}, {"France", "FR"}, {"Germany", "DE"},
	{"Greece", "GR"}, {"Hungary", "HU"}, {"India", "IN"}, {"Indonesia", "ID"}, {"Ireland", "IE"},
	{"Israel", "IL"}, {"Italy", "IT"}, {"Japan", "JP"}, {"Kenya", "KE"}, {"Mexico", "MX"},
	{"Netherlands", "NL"}, {"New Zealand", "NZ"}, {"Nigeria", "NG"}, {"Norway", "NO"}, {"Peru", "PE"},
	{"Philippines", "PH"}, {"Poland", "PL"}, {"Portugal", "PT"}, {"Romania", "RO"}, {"Singapore", "SG"},
	{"South Africa", "ZA"}, {"South Korea", "KR"}, {"Spain", "ES"}, {"Sweden", "SE"}, {"Switzerland", "CH"},
	{"Thailand", "TH"}, {"Turkey", "TR"}, {"Ukraine", "UA"}, {"United Kingdom", "GB"}, {"United States", "US"},
	{"Vietnam", "VN"},
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
	"San Francisco", "Indianapolis", "Seattle", "Denver", "Washington",
	"Boston", "Nashville", "Detroit", "Portland", "Las Vegas",
	"London", "Paris", "Tokyo", "Berlin", "Madrid",
	"Rome", "Amsterdam", "Vienna", "Prague", "Barcelona",
	"Munich", "Milan", "Stockholm", "Copenhagen", "Oslo",
}

var streetNames = []string{
	"Main", "Oak", "Pine", "Maple", "Cedar", "Elm", "Washington", "Lake", "Hill", "Park",
	"Sunset", "River", "Church", "Highland", "Spring", "Walnut", "Lincoln", "Jackson", "Meadow", "Forest",
}

var streetSuffixes = []string{"St", "Ave", "Blvd", "Rd", "Ln", "Dr", "Ct", "Way", "Pl", "Terrace"}

var departments = []string{
	"Engineering", "Sales", "Marketing", "Finance", "Human Resources", "Legal", "Operations",
	"Customer Support", "Product", "Research and Development", "Procurement", "Quality Assurance",
	"Information Technology", "Design", "Logistics",
}

var jobLevels = []string{"Junior", "Senior", "Lead", "Principal", "Chief", "Associate", "Staff"}

var jobRoles = []string{
	"Software Engineer", "Accountant", "Designer", "Data Analyst", "Product Manager", "Architect",
	"Sales Representative", "Consultant", "Recruiter", "Technician", "Administrator", "Counsel",
	"Marketing Specialist", "Support Agent", "Operations Manager",
}

var fileExtensions = map[string][]string{
	"audio":  {"mp3", "wav", "flac", "aac", "ogg"},
	"image":  {"jpg", "png", "gif", "bmp", "svg", "webp"},
	"video":  {"mp4", "avi", "mkv", "mov", "webm"},
	"text":   {"txt", "md", "csv", "log", "rtf"},
	"office": {"doc", "docx", "xls", "xlsx", "ppt", "pptx", "pdf"},
	"code":   {"go", "py", "js", "ts", "java", "rb", "rs", "c"},
}

var tlds = []string{"com", "net", "org", "io", "dev", "info", "biz", "co", "app", "us", "uk", "de"}

var colorNames = []string{
	"Black", "White", "Red", "Green", "Blue", "Yellow", "Orange", "Purple", "Pink", "Brown",
	"Gray", "Cyan", "Magenta", "Lime", "Maroon", "Navy", "Olive", "Teal", "Silver", "Gold",
	"Indigo", "Violet", "Coral", "Salmon", "Turquoise",
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var safeEmailDomains = []string{"example.com", "example.org", "example.net"}

var freeEmailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "proton.me"}

// phoneFormats maps an ISO region to a number layout: '#' is any digit and
// '%' is a digit from 1 to 9.
var phoneFormats = map[string]string{
	"US": "+1 (%##) %##-####",
	"CA": "+1 (%##) %##-####",
	"GB": "+44 %### ######",
	"DE": "+49 %## #######",
	"FR": "+33 % ## ## ## ##",
	"ES": "+34 %## ### ###",
	"IT": "+39 %## ### ####",
	"NL": "+31 6 ########",
	"IN": "+91 %#### #####",
	"AU": "+61 % #### ####",
	"JP": "+81 %#-####-####",
	"BR": "+55 %# 9####-####",
	"MX": "+52 %# #### ####",
	"IE": "+353 8# ### ####",
	"SE": "+46 7# ### ## ##",
	"PL": "+48 %## ### ###",
}

// ibanFormats holds the total IBAN length and the BBAN layout per country:
// 'n' is a digit and 'a' an uppercase letter.
var ibanFormats = map[string]string{
	"DE": "nnnnnnnnnnnnnnnnnn",
	"FR": "nnnnnnnnnnnnnnnnnnnnnnn",
	"GB": "aaaannnnnnnnnnnnnn",
	"ES": "nnnnnnnnnnnnnnnnnnnn",
	"IT": "annnnnnnnnnnnnnnnnnnnnn",
	"NL": "aaaannnnnnnnnn",
	"BE": "nnnnnnnnnnnn",
	"CH": "nnnnnnnnnnnnnnnnn",
	"AT": "nnnnnnnnnnnnnnnn",
	"PL": "nnnnnnnnnnnnnnnnnnnnnnnn",
	"SE": "nnnnnnnnnnnnnnnnnnnn",
	"IE": "aaaannnnnnnnnnnnnn",
	"PT": "nnnnnnnnnnnnnnnnnnnnn",
}

type cardBrand struct {
	prefixes []string
	length   int
	groups   []int
}

var cardBrands = map[string]cardBrand{
	"visa":       {prefixes: []string{"4"}, length: 16, groups: []int{4, 4, 4, 4}},
	"mastercard": {prefixes: []string{"51", "52", "53", "54", "55", "2221", "2720"}, length: 16, groups: []int{4, 4, 4, 4}},
	"amex":       {prefixes: []string{"34", "37"}, length: 15, groups: []int{4, 6, 5}},
	"discover":   {prefixes: []string{"6011", "644", "645", "65"}, length: 16, groups: []int{4, 4, 4, 4}},
}

var cardBrandNames = []string{"visa", "mastercard", "amex", "discover"}

var browserTemplates = []string{
	"Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.%d.%d Safari/537.36",
	"Mozilla/5.0 (%s; rv:%d.0) Gecko/20100101 Firefox/%d.0",
	"Mozilla/5.0 (%s) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/%d.%d Safari/605.1.15",
	"Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.%d.%d Safari/537.36 Edg/%d.0.%d.%d",
}

var userAgentPlatforms = []string{
	"Windows NT 10.0; Win64; x64",
	"Macintosh; Intel Mac OS X 10_15_7",
	"X11; Linux x86_64",
	"X11; Ubuntu; Linux x86_64",
	"iPhone; CPU iPhone OS 17_4 like Mac OS X",
	"Linux; Android 14; Pixel 8",
}
