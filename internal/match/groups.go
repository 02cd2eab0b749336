package match

// specializationGroups collects known synonym spellings of the same branch.
// All entries are lowercase; membership testing happens on normalized text.
// Maintained alongside the catalogs whenever a partner adds new programs.
var specializationGroups = [][]string{
	// Engineering core
	{"computer science & engineering", "computer science and engineering", "computer science engineering", "cse", "computer science & eng"},
	{"mechanical engineering", "mechanical eng"},
	{"civil engineering", "civil eng"},
	{"electronics & communication engineering", "electronics and communication engineering", "electronics communication engineering", "ece", "electronics & comm"},
	{"electrical engineering", "electrical eng"},
	{"information technology"},
	{"biotechnology", "biotech", "bio technology"},
	{"chemical engineering", "chemical eng"},
	{"aerospace engineering", "aerospace eng"},
	{"automobile engineering", "automobile eng", "automotive engineering"},
	{"mechatronics engineering", "mechatronics"},
	{"food technology", "food tech"},

	// Computing specializations
	{"artificial intelligence & machine learning", "artificial intelligence and machine learning", "ai & ml", "aiml", "artificial intelligence", "machine learning", "ai/ml"},
	{"data science", "data science & analytics", "data science and analytics", "data analytics", "big data"},
	{"cyber security", "cybersecurity", "cyber security & forensics", "cyber security and forensics"},
	{"cloud computing", "cloud computing & virtualization", "cloud technology", "cloud computing and virtualization"},
	{"full stack development", "full stack", "fullstack development"},
	{"internet of things", "iot applications", "ai for iot applications"},
	{"blockchain technology", "blockchain", "block chain technology"},
	{"augmented & virtual reality", "augmented and virtual reality", "ar/vr", "arvr", "augmented reality", "virtual reality"},

	// Business
	{"business administration", "general management", "bba general", "business admin"},
	{"banking & finance", "banking and finance", "banking finance", "financial management"},
	{"marketing management", "marketing", "marketing mgmt"},
	{"human resource management", "hr management", "strategic hr", "human resources"},
	{"international business", "global business", "international trade"},
	{"entrepreneurship", "entrepreneurial studies"},
	{"supply chain management", "logistics and supply chain management", "supply chain", "logistics"},
	{"health care management", "healthcare management", "hospital management", "healthcare & hospital management"},
	{"business analytics", "analytics"},
	{"digital marketing"},

	// Commerce
	{"commerce", "general commerce", "accounting", "finance & accounting"},
	{"international accounting & finance", "international accounting and finance", "acca", "accounting & finance"},
	{"financial markets", "capital markets", "finance markets"},

	// Sciences
	{"computer science", "computer science hons"},
	{"physics", "applied physics"},
	{"chemistry", "applied chemistry", "computational chemistry"},
	{"mathematics", "maths", "applied mathematics"},
	{"microbiology", "applied microbiology"},
	{"zoology", "animal science"},
	{"environmental science", "environmental studies"},
	{"forensic science", "forensics"},

	// Health sciences
	{"nursing"},
	{"medical lab technology", "medical laboratory technology", "bmlt", "laboratory technology"},
	{"radiology & imaging technology", "radiological imaging techniques", "medical radiology and imaging technology", "bmrit", "radiology"},
	{"cardiac care technology", "cardiovascular technology"},
	{"operation theatre technology", "operation theater technology"},
	{"nutrition & dietetics", "nutrition and dietetics", "clinical nutrition", "food science and dietetics"},
	{"physiotherapy", "physical therapy"},
	{"optometry"},

	// Humanities
	{"english", "english literature", "english language"},
	{"psychology", "applied psychology", "clinical psychology"},
	{"economics", "applied economics"},
	{"sociology", "social sciences"},
	{"political science", "politics", "government"},
	{"history", "modern history"},
	{"geography", "human geography"},
	{"international relations", "international affairs", "diplomacy"},
	{"liberal arts", "general arts"},

	// Design
	{"fashion design", "fashion", "apparel design"},
	{"interior design", "space design"},
	{"product design", "industrial design", "product and industrial design"},
	{"communication design", "graphic design", "visual communication"},
	{"animation, vfx and gaming", "animation & vfx", "animation and vfx", "animation", "gaming design"},

	// Media
	{"journalism & mass communication", "journalism and mass communication", "journalism", "mass communication"},
	{"film television & ott production", "film production and theatre", "film & tv production", "cinema", "film production"},

	// Professional programs
	{"law", "legal studies", "jurisprudence"},
	{"architecture", "architectural studies"},
	{"pharmacy", "pharmaceutical sciences"},
	{"education", "teaching", "pedagogy"},
}
