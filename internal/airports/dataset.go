package airports

// dataset is the embedded reference airport list: major international and
// regional airports that cover the document corpus. The dataset is owned by
// an external process and refreshed with releases, not at runtime.
var dataset = []Info{
	{"ATL", "Hartsfield-Jackson Atlanta International", "Atlanta", "US"},
	{"PEK", "Beijing Capital International", "Beijing", "CN"},
	{"LAX", "Los Angeles International", "Los Angeles", "US"},
	{"DXB", "Dubai International", "Dubai", "AE"},
	{"HND", "Tokyo Haneda", "Tokyo", "JP"},
	{"ORD", "Chicago O'Hare International", "Chicago", "US"},
	{"LHR", "London Heathrow", "London", "GB"},
	{"PVG", "Shanghai Pudong International", "Shanghai", "CN"},
	{"CDG", "Paris Charles de Gaulle", "Paris", "FR"},
	{"DFW", "Dallas/Fort Worth International", "Dallas", "US"},
	{"AMS", "Amsterdam Schiphol", "Amsterdam", "NL"},
	{"FRA", "Frankfurt am Main", "Frankfurt", "DE"},
	{"IST", "Istanbul Airport", "Istanbul", "TR"},
	{"CAN", "Guangzhou Baiyun International", "Guangzhou", "CN"},
	{"JFK", "John F. Kennedy International", "New York", "US"},
	{"SIN", "Singapore Changi", "Singapore", "SG"},
	{"DEN", "Denver International", "Denver", "US"},
	{"ICN", "Seoul Incheon International", "Seoul", "KR"},
	{"BKK", "Bangkok Suvarnabhumi", "Bangkok", "TH"},
	{"DEL", "Indira Gandhi International", "Delhi", "IN"},
	{"SFO", "San Francisco International", "San Francisco", "US"},
	{"HKG", "Hong Kong International", "Hong Kong", "HK"},
	{"MAD", "Adolfo Suárez Madrid-Barajas", "Madrid", "ES"},
	{"MIA", "Miami International", "Miami", "US"},
	{"BCN", "Barcelona-El Prat", "Barcelona", "ES"},
	{"LGW", "London Gatwick", "London", "GB"},
	{"YYZ", "Toronto Pearson International", "Toronto", "CA"},
	{"SEA", "Seattle-Tacoma International", "Seattle", "US"},
	{"MUC", "Munich Airport", "Munich", "DE"},
	{"EWR", "Newark Liberty International", "Newark", "US"},
	{"MEX", "Mexico City International", "Mexico City", "MX"},
	{"SYD", "Sydney Kingsford Smith", "Sydney", "AU"},
	{"MCO", "Orlando International", "Orlando", "US"},
	{"NRT", "Tokyo Narita International", "Tokyo", "JP"},
	{"GRU", "São Paulo-Guarulhos International", "São Paulo", "BR"},
	{"FCO", "Rome Fiumicino", "Rome", "IT"},
	{"LAS", "Harry Reid International", "Las Vegas", "US"},
	{"PHX", "Phoenix Sky Harbor International", "Phoenix", "US"},
	{"IAH", "George Bush Intercontinental", "Houston", "US"},
	{"CLT", "Charlotte Douglas International", "Charlotte", "US"},
	{"TPE", "Taiwan Taoyuan International", "Taipei", "TW"},
	{"KUL", "Kuala Lumpur International", "Kuala Lumpur", "MY"},
	{"MNL", "Ninoy Aquino International", "Manila", "PH"},
	{"ZRH", "Zurich Airport", "Zurich", "CH"},
	{"VIE", "Vienna International", "Vienna", "AT"},
	{"CPH", "Copenhagen Kastrup", "Copenhagen", "DK"},
	{"OSL", "Oslo Gardermoen", "Oslo", "NO"},
	{"ARN", "Stockholm Arlanda", "Stockholm", "SE"},
	{"HEL", "Helsinki-Vantaa", "Helsinki", "FI"},
	{"DUB", "Dublin Airport", "Dublin", "IE"},
	{"BRU", "Brussels Airport", "Brussels", "BE"},
	{"LIS", "Lisbon Humberto Delgado", "Lisbon", "PT"},
	{"OPO", "Porto Francisco Sá Carneiro", "Porto", "PT"},
	{"ATH", "Athens International", "Athens", "GR"},
	{"WAW", "Warsaw Chopin", "Warsaw", "PL"},
	{"PRG", "Václav Havel Prague", "Prague", "CZ"},
	{"BUD", "Budapest Ferenc Liszt International", "Budapest", "HU"},
	{"OTP", "Bucharest Henri Coandă International", "Bucharest", "RO"},
	{"SOF", "Sofia Airport", "Sofia", "BG"},
	{"BEG", "Belgrade Nikola Tesla", "Belgrade", "RS"},
	{"ZAG", "Zagreb Franjo Tuđman", "Zagreb", "HR"},
	{"LJU", "Ljubljana Jože Pučnik", "Ljubljana", "SI"},
	{"TXL", "Berlin Tegel", "Berlin", "DE"},
	{"BER", "Berlin Brandenburg", "Berlin", "DE"},
	{"HAM", "Hamburg Airport", "Hamburg", "DE"},
	{"DUS", "Düsseldorf Airport", "Düsseldorf", "DE"},
	{"CGN", "Cologne Bonn", "Cologne", "DE"},
	{"STR", "Stuttgart Airport", "Stuttgart", "DE"},
	{"HAJ", "Hannover Airport", "Hannover", "DE"},
	{"NUE", "Nuremberg Airport", "Nuremberg", "DE"},
	{"LEJ", "Leipzig/Halle", "Leipzig", "DE"},
	{"ORY", "Paris Orly", "Paris", "FR"},
	{"NCE", "Nice Côte d'Azur", "Nice", "FR"},
	{"LYS", "Lyon-Saint Exupéry", "Lyon", "FR"},
	{"MRS", "Marseille Provence", "Marseille", "FR"},
	{"TLS", "Toulouse-Blagnac", "Toulouse", "FR"},
	{"GVA", "Geneva Airport", "Geneva", "CH"},
	{"BSL", "EuroAirport Basel Mulhouse Freiburg", "Basel", "CH"},
	{"LIN", "Milan Linate", "Milan", "IT"},
	{"MXP", "Milan Malpensa", "Milan", "IT"},
	{"VCE", "Venice Marco Polo", "Venice", "IT"},
	{"NAP", "Naples International", "Naples", "IT"},
	{"BLQ", "Bologna Guglielmo Marconi", "Bologna", "IT"},
	{"AGP", "Málaga-Costa del Sol", "Málaga", "ES"},
	{"PMI", "Palma de Mallorca", "Palma", "ES"},
	{"ALC", "Alicante-Elche", "Alicante", "ES"},
	{"VLC", "Valencia Airport", "Valencia", "ES"},
	{"SVQ", "Seville Airport", "Seville", "ES"},
	{"BIO", "Bilbao Airport", "Bilbao", "ES"},
	{"MAN", "Manchester Airport", "Manchester", "GB"},
	{"STN", "London Stansted", "London", "GB"},
	{"LTN", "London Luton", "London", "GB"},
	{"LCY", "London City", "London", "GB"},
	{"EDI", "Edinburgh Airport", "Edinburgh", "GB"},
	{"GLA", "Glasgow Airport", "Glasgow", "GB"},
	{"BHX", "Birmingham Airport", "Birmingham", "GB"},
	{"BRS", "Bristol Airport", "Bristol", "GB"},
	{"NCL", "Newcastle International", "Newcastle", "GB"},
	{"ORK", "Cork Airport", "Cork", "IE"},
	{"SNN", "Shannon Airport", "Shannon", "IE"},
	{"KEF", "Keflavík International", "Reykjavík", "IS"},
	{"GOT", "Göteborg Landvetter", "Gothenburg", "SE"},
	{"BGO", "Bergen Flesland", "Bergen", "NO"},
	{"TRD", "Trondheim Værnes", "Trondheim", "NO"},
	{"AAL", "Aalborg Airport", "Aalborg", "DK"},
	{"BLL", "Billund Airport", "Billund", "DK"},
	{"RIX", "Riga International", "Riga", "LV"},
	{"TLL", "Tallinn Lennart Meri", "Tallinn", "EE"},
	{"VNO", "Vilnius Airport", "Vilnius", "LT"},
	{"KRK", "Kraków John Paul II International", "Kraków", "PL"},
	{"GDN", "Gdańsk Lech Wałęsa", "Gdańsk", "PL"},
	{"SAW", "Istanbul Sabiha Gökçen", "Istanbul", "TR"},
	{"AYT", "Antalya Airport", "Antalya", "TR"},
	{"ESB", "Ankara Esenboğa", "Ankara", "TR"},
	{"TLV", "Ben Gurion International", "Tel Aviv", "IL"},
	{"CAI", "Cairo International", "Cairo", "EG"},
	{"CMN", "Casablanca Mohammed V", "Casablanca", "MA"},
	{"TUN", "Tunis-Carthage", "Tunis", "TN"},
	{"JNB", "O.R. Tambo International", "Johannesburg", "ZA"},
	{"CPT", "Cape Town International", "Cape Town", "ZA"},
	{"NBO", "Jomo Kenyatta International", "Nairobi", "KE"},
	{"ADD", "Addis Ababa Bole International", "Addis Ababa", "ET"},
	{"LOS", "Murtala Muhammed International", "Lagos", "NG"},
	{"DOH", "Hamad International", "Doha", "QA"},
	{"AUH", "Abu Dhabi International", "Abu Dhabi", "AE"},
	{"RUH", "King Khalid International", "Riyadh", "SA"},
	{"JED", "King Abdulaziz International", "Jeddah", "SA"},
	{"BOM", "Chhatrapati Shivaji Maharaj International", "Mumbai", "IN"},
	{"BLR", "Kempegowda International", "Bengaluru", "IN"},
	{"MAA", "Chennai International", "Chennai", "IN"},
	{"HYD", "Rajiv Gandhi International", "Hyderabad", "IN"},
	{"CMB", "Bandaranaike International", "Colombo", "LK"},
	{"DAC", "Hazrat Shahjalal International", "Dhaka", "BD"},
	{"KHI", "Jinnah International", "Karachi", "PK"},
	{"CGK", "Soekarno-Hatta International", "Jakarta", "ID"},
	{"DPS", "Ngurah Rai International", "Denpasar", "ID"},
	{"SGN", "Tan Son Nhat International", "Ho Chi Minh City", "VN"},
	{"HAN", "Noi Bai International", "Hanoi", "VN"},
	{"PNH", "Phnom Penh International", "Phnom Penh", "KH"},
	{"KIX", "Kansai International", "Osaka", "JP"},
	{"NGO", "Chubu Centrair International", "Nagoya", "JP"},
	{"FUK", "Fukuoka Airport", "Fukuoka", "JP"},
	{"CTS", "New Chitose", "Sapporo", "JP"},
	{"GMP", "Seoul Gimpo International", "Seoul", "KR"},
	{"PUS", "Gimhae International", "Busan", "KR"},
	{"SHA", "Shanghai Hongqiao International", "Shanghai", "CN"},
	{"SZX", "Shenzhen Bao'an International", "Shenzhen", "CN"},
	{"CTU", "Chengdu Shuangliu International", "Chengdu", "CN"},
	{"XIY", "Xi'an Xianyang International", "Xi'an", "CN"},
	{"MEL", "Melbourne Airport", "Melbourne", "AU"},
	{"BNE", "Brisbane Airport", "Brisbane", "AU"},
	{"PER", "Perth Airport", "Perth", "AU"},
	{"ADL", "Adelaide Airport", "Adelaide", "AU"},
	{"AKL", "Auckland Airport", "Auckland", "NZ"},
	{"WLG", "Wellington International", "Wellington", "NZ"},
	{"CHC", "Christchurch International", "Christchurch", "NZ"},
	{"YVR", "Vancouver International", "Vancouver", "CA"},
	{"YUL", "Montréal-Trudeau International", "Montréal", "CA"},
	{"YYC", "Calgary International", "Calgary", "CA"},
	{"YEG", "Edmonton International", "Edmonton", "CA"},
	{"YOW", "Ottawa Macdonald-Cartier International", "Ottawa", "CA"},
	{"BOS", "Boston Logan International", "Boston", "US"},
	{"PHL", "Philadelphia International", "Philadelphia", "US"},
	{"IAD", "Washington Dulles International", "Washington", "US"},
	{"DCA", "Ronald Reagan Washington National", "Washington", "US"},
	{"BWI", "Baltimore/Washington International", "Baltimore", "US"},
	{"MSP", "Minneapolis-Saint Paul International", "Minneapolis", "US"},
	{"DTW", "Detroit Metropolitan Wayne County", "Detroit", "US"},
	{"SLC", "Salt Lake City International", "Salt Lake City", "US"},
	{"SAN", "San Diego International", "San Diego", "US"},
	{"PDX", "Portland International", "Portland", "US"},
	{"AUS", "Austin-Bergstrom International", "Austin", "US"},
	{"SJC", "Norman Y. Mineta San José International", "San José", "US"},
	{"OAK", "Oakland International", "Oakland", "US"},
	{"TPA", "Tampa International", "Tampa", "US"},
	{"FLL", "Fort Lauderdale-Hollywood International", "Fort Lauderdale", "US"},
	{"MDW", "Chicago Midway International", "Chicago", "US"},
	{"HNL", "Daniel K. Inouye International", "Honolulu", "US"},
	{"ANC", "Ted Stevens Anchorage International", "Anchorage", "US"},
	{"LGA", "LaGuardia Airport", "New York", "US"},
	{"STL", "St. Louis Lambert International", "St. Louis", "US"},
	{"BNA", "Nashville International", "Nashville", "US"},
	{"RDU", "Raleigh-Durham International", "Raleigh", "US"},
	{"MCI", "Kansas City International", "Kansas City", "US"},
	{"CUN", "Cancún International", "Cancún", "MX"},
	{"GDL", "Guadalajara International", "Guadalajara", "MX"},
	{"MTY", "Monterrey International", "Monterrey", "MX"},
	{"PTY", "Tocumen International", "Panama City", "PA"},
	{"BOG", "El Dorado International", "Bogotá", "CO"},
	{"LIM", "Jorge Chávez International", "Lima", "PE"},
	{"SCL", "Arturo Merino Benítez International", "Santiago", "CL"},
	{"EZE", "Ministro Pistarini International", "Buenos Aires", "AR"},
	{"AEP", "Aeroparque Jorge Newbery", "Buenos Aires", "AR"},
	{"GIG", "Rio de Janeiro-Galeão International", "Rio de Janeiro", "BR"},
	{"CGH", "São Paulo-Congonhas", "São Paulo", "BR"},
	{"BSB", "Brasília International", "Brasília", "BR"},
	{"UIO", "Mariscal Sucre International", "Quito", "EC"},
	{"SJU", "Luis Muñoz Marín International", "San Juan", "PR"},
	{"HAV", "José Martí International", "Havana", "CU"},
	{"SVO", "Moscow Sheremetyevo", "Moscow", "RU"},
	{"DME", "Moscow Domodedovo", "Moscow", "RU"},
	{"LED", "Pulkovo Airport", "Saint Petersburg", "RU"},
	{"KBP", "Kyiv Boryspil International", "Kyiv", "UA"},
	{"FAO", "Faro Airport", "Faro", "PT"},
	{"FNC", "Madeira Airport", "Funchal", "PT"},
	{"LPA", "Gran Canaria Airport", "Las Palmas", "ES"},
	{"TFS", "Tenerife South", "Tenerife", "ES"},
	{"IBZ", "Ibiza Airport", "Ibiza", "ES"},
	{"CTA", "Catania-Fontanarossa", "Catania", "IT"},
	{"PMO", "Palermo Falcone Borsellino", "Palermo", "IT"},
	{"CAG", "Cagliari Elmas", "Cagliari", "IT"},
	{"SKG", "Thessaloniki Makedonia", "Thessaloniki", "GR"},
	{"HER", "Heraklion Nikos Kazantzakis", "Heraklion", "GR"},
	{"RHO", "Rhodes Diagoras", "Rhodes", "GR"},
	{"LCA", "Larnaca International", "Larnaca", "CY"},
	{"MLA", "Malta International", "Luqa", "MT"},
	{"INN", "Innsbruck Airport", "Innsbruck", "AT"},
	{"SZG", "Salzburg Airport", "Salzburg", "AT"},
	{"GRZ", "Graz Airport", "Graz", "AT"},
	{"BTS", "Bratislava Airport", "Bratislava", "SK"},
	{"LUX", "Luxembourg Airport", "Luxembourg", "LU"},
	{"EIN", "Eindhoven Airport", "Eindhoven", "NL"},
	{"RTM", "Rotterdam The Hague", "Rotterdam", "NL"},
	{"CRL", "Brussels South Charleroi", "Charleroi", "BE"},
	{"ANR", "Antwerp International", "Antwerp", "BE"},
}
