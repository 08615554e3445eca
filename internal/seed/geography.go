package seed

type countrySeed struct {
	Code   string
	Name   string
	States []string
}

var countries = []countrySeed{
	{Code: "BR", Name: "Brazil", States: []string{
		"Acre", "Alagoas", "Amapá", "Amazonas", "Bahia", "Ceará", "Distrito Federal",
		"Espírito Santo", "Goiás", "Maranhão", "Mato Grosso do Sul", "Mato Grosso",
		"Minas Gerais", "Paraná", "Paraíba", "Pará", "Pernambuco", "Piaui",
		"Rio de Janeiro", "Rio Grande do Norte", "Rio Grande do Sul", "Rondônia",
		"Roraima", "Santa Catarina", "Sergipe", "São Paulo", "Tocantins",
	}},
	{Code: "CA", Name: "Canada", States: []string{
		"Alberta", "British Columbia", "Manitoba", "New Brunswick",
		"Newfoundland and Labrador", "Northwest Territories", "Nova Scotia", "Nunavut",
		"Ontario", "Prince Edward Island", "Quebec", "Saskatchewan", "Yukon",
	}},
	{Code: "DE", Name: "Germany", States: []string{
		"Baden-Württemberg", "Bayern", "Berlin", "Brandenburg", "Bremen", "Hamburg",
		"Hessen", "Mecklenburg-Vorpommern", "Niedersachsen", "Nordrhein-Westfalen",
		"Rheinland-Pfalz", "Saarland", "Sachsen", "Sachsen-Anhalt",
		"Schleswig-Holstein", "Thüringen",
	}},
	{Code: "IN", Name: "India", States: []string{
		"Andaman and Nicobar Islands", "Andhra Pradesh", "Arunachal Pradesh", "Assam",
		"Bihar", "Chandigarh", "Chhattisgarh", "Dadra and Nagar Haveli", "Daman and Diu",
		"Delhi", "Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jammu & Kashmir",
		"Jharkhand", "Karnataka", "Kerala", "Lakshadweep", "Madhya Pradesh",
		"Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha",
		"Puducherry", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu", "Telangana",
		"Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	}},
	{Code: "TR", Name: "Turkey", States: []string{
		"Adana", "Adıyaman", "Afyonkarahisar", "Ağrı", "Aksaray", "Amasya", "Ankara",
		"Antalya", "Ardahan", "Artvin", "Aydın", "Balıkesir", "Bartın", "Batman",
		"Bayburt", "Bilecik", "Bingöl", "Bitlis", "Bolu", "Burdur", "Bursa",
		"Çanakkale", "Çankırı", "Çorum", "Denizli", "Diyarbakır", "Düzce", "Edirne",
		"Elazığ", "Erzincan", "Erzurum", "Eskişehir", "Gaziantep", "Giresun",
		"Gümüşhane", "Hakkâri", "Hatay", "Iğdır", "Isparta", "İstanbul", "İzmir",
		"Kahramanmaraş", "Karabük", "Karaman", "Kars", "Kastamonu", "Kayseri",
		"Kırıkkale", "Kırklareli", "Kırşehir", "Kilis", "Kocaeli", "Konya", "Kütahya",
		"Malatya", "Manisa", "Mardin", "Mersin", "Muğla", "Muş", "Nevşehir", "Niğde",
		"Ordu", "Osmaniye", "Rize", "Sakarya", "Samsun", "Siirt", "Sinop", "Sivas",
		"Şanlıurfa", "Şırnak", "Tekirdağ", "Tokat", "Trabzon", "Tunceli", "Uşak",
		"Van", "Yalova", "Yozgat", "Zonguldak",
	}},
	{Code: "US", Name: "United States", States: []string{
		"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
		"Connecticut", "Delaware", "District Of Columbia", "Florida", "Georgia",
		"Hawaii", "Idaho", "Illinois", "Indiana", "Iowa", "Kansas", "Kentucky",
		"Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
		"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
		"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota",
		"Ohio", "Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
		"South Dakota", "Tennessee", "Texas", "Utah", "Vermont", "Virginia",
		"Washington", "West Virginia", "Wisconsin", "Wyoming",
	}},
}
