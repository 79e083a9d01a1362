package money

// ISO 4217 currencies known to the registry.
// The order of the constants defines the integer index of a currency and
// must not be relied upon outside of this package.
const (
	XXX Currency = 0   // No currency
	XTS Currency = 1   // Test currency
	AED Currency = 2   // UAE Dirham
	AFN Currency = 3   // Afghani
	ALL Currency = 4   // Lek
	AMD Currency = 5   // Armenian Dram
	ANG Currency = 6   // Netherlands Antillean Guilder
	AOA Currency = 7   // Kwanza
	ARS Currency = 8   // Argentine Peso
	AUD Currency = 9   // Australian Dollar
	AWG Currency = 10  // Aruban Florin
	AZN Currency = 11  // Azerbaijan Manat
	BAM Currency = 12  // Convertible Mark
	BBD Currency = 13  // Barbados Dollar
	BDT Currency = 14  // Taka
	BGN Currency = 15  // Bulgarian Lev
	BHD Currency = 16  // Bahraini Dinar
	BIF Currency = 17  // Burundi Franc
	BMD Currency = 18  // Bermudian Dollar
	BND Currency = 19  // Brunei Dollar
	BOB Currency = 20  // Boliviano
	BOV Currency = 21  // Mvdol
	BRL Currency = 22  // Brazilian Real
	BSD Currency = 23  // Bahamian Dollar
	BTN Currency = 24  // Ngultrum
	BWP Currency = 25  // Pula
	BYN Currency = 26  // Belarusian Ruble
	BZD Currency = 27  // Belize Dollar
	CAD Currency = 28  // Canadian Dollar
	CDF Currency = 29  // Congolese Franc
	CHE Currency = 30  // WIR Euro
	CHF Currency = 31  // Swiss Franc
	CHW Currency = 32  // WIR Franc
	CLF Currency = 33  // Unidad de Fomento
	CLP Currency = 34  // Chilean Peso
	CNY Currency = 35  // Yuan Renminbi
	COP Currency = 36  // Colombian Peso
	COU Currency = 37  // Unidad de Valor Real
	CRC Currency = 38  // Costa Rican Colon
	CUP Currency = 39  // Cuban Peso
	CVE Currency = 40  // Cabo Verde Escudo
	CZK Currency = 41  // Czech Koruna
	DJF Currency = 42  // Djibouti Franc
	DKK Currency = 43  // Danish Krone
	DOP Currency = 44  // Dominican Peso
	DZD Currency = 45  // Algerian Dinar
	EGP Currency = 46  // Egyptian Pound
	ERN Currency = 47  // Nakfa
	ETB Currency = 48  // Ethiopian Birr
	EUR Currency = 49  // Euro
	FJD Currency = 50  // Fiji Dollar
	FKP Currency = 51  // Falkland Islands Pound
	GBP Currency = 52  // Pound Sterling
	GEL Currency = 53  // Lari
	GHS Currency = 54  // Ghana Cedi
	GIP Currency = 55  // Gibraltar Pound
	GMD Currency = 56  // Dalasi
	GNF Currency = 57  // Guinean Franc
	GTQ Currency = 58  // Quetzal
	GYD Currency = 59  // Guyana Dollar
	HKD Currency = 60  // Hong Kong Dollar
	HNL Currency = 61  // Lempira
	HTG Currency = 62  // Gourde
	HUF Currency = 63  // Forint
	IDR Currency = 64  // Rupiah
	ILS Currency = 65  // New Israeli Sheqel
	INR Currency = 66  // Indian Rupee
	IQD Currency = 67  // Iraqi Dinar
	IRR Currency = 68  // Iranian Rial
	ISK Currency = 69  // Iceland Krona
	JMD Currency = 70  // Jamaican Dollar
	JOD Currency = 71  // Jordanian Dinar
	JPY Currency = 72  // Yen
	KES Currency = 73  // Kenyan Shilling
	KGS Currency = 74  // Som
	KHR Currency = 75  // Riel
	KMF Currency = 76  // Comorian Franc
	KPW Currency = 77  // North Korean Won
	KRW Currency = 78  // Won
	KWD Currency = 79  // Kuwaiti Dinar
	KYD Currency = 80  // Cayman Islands Dollar
	KZT Currency = 81  // Tenge
	LAK Currency = 82  // Lao Kip
	LBP Currency = 83  // Lebanese Pound
	LKR Currency = 84  // Sri Lanka Rupee
	LRD Currency = 85  // Liberian Dollar
	LSL Currency = 86  // Loti
	LYD Currency = 87  // Libyan Dinar
	MAD Currency = 88  // Moroccan Dirham
	MDL Currency = 89  // Moldovan Leu
	MGA Currency = 90  // Malagasy Ariary
	MKD Currency = 91  // Denar
	MMK Currency = 92  // Kyat
	MNT Currency = 93  // Tugrik
	MOP Currency = 94  // Pataca
	MRU Currency = 95  // Ouguiya
	MUR Currency = 96  // Mauritius Rupee
	MVR Currency = 97  // Rufiyaa
	MWK Currency = 98  // Malawi Kwacha
	MXN Currency = 99  // Mexican Peso
	MXV Currency = 100 // Mexican Unidad de Inversion
	MYR Currency = 101 // Malaysian Ringgit
	MZN Currency = 102 // Mozambique Metical
	NAD Currency = 103 // Namibia Dollar
	NGN Currency = 104 // Naira
	NIO Currency = 105 // Cordoba Oro
	NOK Currency = 106 // Norwegian Krone
	NPR Currency = 107 // Nepalese Rupee
	NZD Currency = 108 // New Zealand Dollar
	OMR Currency = 109 // Rial Omani
	PAB Currency = 110 // Balboa
	PEN Currency = 111 // Sol
	PGK Currency = 112 // Kina
	PHP Currency = 113 // Philippine Peso
	PKR Currency = 114 // Pakistan Rupee
	PLN Currency = 115 // Zloty
	PYG Currency = 116 // Guarani
	QAR Currency = 117 // Qatari Rial
	RON Currency = 118 // Romanian Leu
	RSD Currency = 119 // Serbian Dinar
	RUB Currency = 120 // Russian Ruble
	RWF Currency = 121 // Rwanda Franc
	SAR Currency = 122 // Saudi Riyal
	SBD Currency = 123 // Solomon Islands Dollar
	SCR Currency = 124 // Seychelles Rupee
	SDG Currency = 125 // Sudanese Pound
	SEK Currency = 126 // Swedish Krona
	SGD Currency = 127 // Singapore Dollar
	SHP Currency = 128 // Saint Helena Pound
	SLE Currency = 129 // Leone
	SOS Currency = 130 // Somali Shilling
	SRD Currency = 131 // Surinam Dollar
	SSP Currency = 132 // South Sudanese Pound
	STN Currency = 133 // Dobra
	SVC Currency = 134 // El Salvador Colon
	SYP Currency = 135 // Syrian Pound
	SZL Currency = 136 // Lilangeni
	THB Currency = 137 // Baht
	TJS Currency = 138 // Somoni
	TMT Currency = 139 // Turkmenistan New Manat
	TND Currency = 140 // Tunisian Dinar
	TOP Currency = 141 // Pa'anga
	TRY Currency = 142 // Turkish Lira
	TTD Currency = 143 // Trinidad and Tobago Dollar
	TWD Currency = 144 // New Taiwan Dollar
	TZS Currency = 145 // Tanzanian Shilling
	UAH Currency = 146 // Hryvnia
	UGX Currency = 147 // Uganda Shilling
	USD Currency = 148 // US Dollar
	USN Currency = 149 // US Dollar (Next day)
	UYI Currency = 150 // Uruguay Peso en Unidades Indexadas
	UYU Currency = 151 // Peso Uruguayo
	UYW Currency = 152 // Unidad Previsional
	UZS Currency = 153 // Uzbekistan Sum
	VED Currency = 154 // Bolivar Soberano
	VES Currency = 155 // Bolivar Soberano
	VND Currency = 156 // Dong
	VUV Currency = 157 // Vatu
	WST Currency = 158 // Tala
	XAF Currency = 159 // CFA Franc BEAC
	XCD Currency = 160 // East Caribbean Dollar
	XOF Currency = 161 // CFA Franc BCEAO
	XPF Currency = 162 // CFP Franc
	YER Currency = 163 // Yemeni Rial
	ZAR Currency = 164 // Rand
	ZMW Currency = 165 // Zambian Kwacha
	ZWG Currency = 166 // Zimbabwe Gold
)

// currencies holds the properties of every currency, indexed by [Currency].
var currencies = [...]currencyInfo{
	XXX: {code: "XXX", num: "999", scale: 0},
	XTS: {code: "XTS", num: "963", scale: 0},
	AED: {code: "AED", num: "784", scale: 2},
	AFN: {code: "AFN", num: "971", scale: 2},
	ALL: {code: "ALL", num: "008", scale: 2},
	AMD: {code: "AMD", num: "051", scale: 2},
	ANG: {code: "ANG", num: "532", scale: 2},
	AOA: {code: "AOA", num: "973", scale: 2},
	ARS: {code: "ARS", num: "032", scale: 2},
	AUD: {code: "AUD", num: "036", scale: 2},
	AWG: {code: "AWG", num: "533", scale: 2},
	AZN: {code: "AZN", num: "944", scale: 2},
	BAM: {code: "BAM", num: "977", scale: 2},
	BBD: {code: "BBD", num: "052", scale: 2},
	BDT: {code: "BDT", num: "050", scale: 2},
	BGN: {code: "BGN", num: "975", scale: 2},
	BHD: {code: "BHD", num: "048", scale: 3},
	BIF: {code: "BIF", num: "108", scale: 0},
	BMD: {code: "BMD", num: "060", scale: 2},
	BND: {code: "BND", num: "096", scale: 2},
	BOB: {code: "BOB", num: "068", scale: 2},
	BOV: {code: "BOV", num: "984", scale: 2},
	BRL: {code: "BRL", num: "986", scale: 2},
	BSD: {code: "BSD", num: "044", scale: 2},
	BTN: {code: "BTN", num: "064", scale: 2},
	BWP: {code: "BWP", num: "072", scale: 2},
	BYN: {code: "BYN", num: "933", scale: 2},
	BZD: {code: "BZD", num: "084", scale: 2},
	CAD: {code: "CAD", num: "124", scale: 2},
	CDF: {code: "CDF", num: "976", scale: 2},
	CHE: {code: "CHE", num: "947", scale: 2},
	CHF: {code: "CHF", num: "756", scale: 2},
	CHW: {code: "CHW", num: "948", scale: 2},
	CLF: {code: "CLF", num: "990", scale: 4},
	CLP: {code: "CLP", num: "152", scale: 0},
	CNY: {code: "CNY", num: "156", scale: 2},
	COP: {code: "COP", num: "170", scale: 2},
	COU: {code: "COU", num: "970", scale: 2},
	CRC: {code: "CRC", num: "188", scale: 2},
	CUP: {code: "CUP", num: "192", scale: 2},
	CVE: {code: "CVE", num: "132", scale: 2},
	CZK: {code: "CZK", num: "203", scale: 2},
	DJF: {code: "DJF", num: "262", scale: 0},
	DKK: {code: "DKK", num: "208", scale: 2},
	DOP: {code: "DOP", num: "214", scale: 2},
	DZD: {code: "DZD", num: "012", scale: 2},
	EGP: {code: "EGP", num: "818", scale: 2},
	ERN: {code: "ERN", num: "232", scale: 2},
	ETB: {code: "ETB", num: "230", scale: 2},
	EUR: {code: "EUR", num: "978", scale: 2},
	FJD: {code: "FJD", num: "242", scale: 2},
	FKP: {code: "FKP", num: "238", scale: 2},
	GBP: {code: "GBP", num: "826", scale: 2},
	GEL: {code: "GEL", num: "981", scale: 2},
	GHS: {code: "GHS", num: "936", scale: 2},
	GIP: {code: "GIP", num: "292", scale: 2},
	GMD: {code: "GMD", num: "270", scale: 2},
	GNF: {code: "GNF", num: "324", scale: 0},
	GTQ: {code: "GTQ", num: "320", scale: 2},
	GYD: {code: "GYD", num: "328", scale: 2},
	HKD: {code: "HKD", num: "344", scale: 2},
	HNL: {code: "HNL", num: "340", scale: 2},
	HTG: {code: "HTG", num: "332", scale: 2},
	HUF: {code: "HUF", num: "348", scale: 2},
	IDR: {code: "IDR", num: "360", scale: 2},
	ILS: {code: "ILS", num: "376", scale: 2},
	INR: {code: "INR", num: "356", scale: 2},
	IQD: {code: "IQD", num: "368", scale: 3},
	IRR: {code: "IRR", num: "364", scale: 2},
	ISK: {code: "ISK", num: "352", scale: 0},
	JMD: {code: "JMD", num: "388", scale: 2},
	JOD: {code: "JOD", num: "400", scale: 3},
	JPY: {code: "JPY", num: "392", scale: 0},
	KES: {code: "KES", num: "404", scale: 2},
	KGS: {code: "KGS", num: "417", scale: 2},
	KHR: {code: "KHR", num: "116", scale: 2},
	KMF: {code: "KMF", num: "174", scale: 0},
	KPW: {code: "KPW", num: "408", scale: 2},
	KRW: {code: "KRW", num: "410", scale: 0},
	KWD: {code: "KWD", num: "414", scale: 3},
	KYD: {code: "KYD", num: "136", scale: 2},
	KZT: {code: "KZT", num: "398", scale: 2},
	LAK: {code: "LAK", num: "418", scale: 2},
	LBP: {code: "LBP", num: "422", scale: 2},
	LKR: {code: "LKR", num: "144", scale: 2},
	LRD: {code: "LRD", num: "430", scale: 2},
	LSL: {code: "LSL", num: "426", scale: 2},
	LYD: {code: "LYD", num: "434", scale: 3},
	MAD: {code: "MAD", num: "504", scale: 2},
	MDL: {code: "MDL", num: "498", scale: 2},
	MGA: {code: "MGA", num: "969", scale: 2},
	MKD: {code: "MKD", num: "807", scale: 2},
	MMK: {code: "MMK", num: "104", scale: 2},
	MNT: {code: "MNT", num: "496", scale: 2},
	MOP: {code: "MOP", num: "446", scale: 2},
	MRU: {code: "MRU", num: "929", scale: 2},
	MUR: {code: "MUR", num: "480", scale: 2},
	MVR: {code: "MVR", num: "462", scale: 2},
	MWK: {code: "MWK", num: "454", scale: 2},
	MXN: {code: "MXN", num: "484", scale: 2},
	MXV: {code: "MXV", num: "979", scale: 2},
	MYR: {code: "MYR", num: "458", scale: 2},
	MZN: {code: "MZN", num: "943", scale: 2},
	NAD: {code: "NAD", num: "516", scale: 2},
	NGN: {code: "NGN", num: "566", scale: 2},
	NIO: {code: "NIO", num: "558", scale: 2},
	NOK: {code: "NOK", num: "578", scale: 2},
	NPR: {code: "NPR", num: "524", scale: 2},
	NZD: {code: "NZD", num: "554", scale: 2},
	OMR: {code: "OMR", num: "512", scale: 3},
	PAB: {code: "PAB", num: "590", scale: 2},
	PEN: {code: "PEN", num: "604", scale: 2},
	PGK: {code: "PGK", num: "598", scale: 2},
	PHP: {code: "PHP", num: "608", scale: 2},
	PKR: {code: "PKR", num: "586", scale: 2},
	PLN: {code: "PLN", num: "985", scale: 2},
	PYG: {code: "PYG", num: "600", scale: 0},
	QAR: {code: "QAR", num: "634", scale: 2},
	RON: {code: "RON", num: "946", scale: 2},
	RSD: {code: "RSD", num: "941", scale: 2},
	RUB: {code: "RUB", num: "643", scale: 2},
	RWF: {code: "RWF", num: "646", scale: 0},
	SAR: {code: "SAR", num: "682", scale: 2},
	SBD: {code: "SBD", num: "090", scale: 2},
	SCR: {code: "SCR", num: "690", scale: 2},
	SDG: {code: "SDG", num: "938", scale: 2},
	SEK: {code: "SEK", num: "752", scale: 2},
	SGD: {code: "SGD", num: "702", scale: 2},
	SHP: {code: "SHP", num: "654", scale: 2},
	SLE: {code: "SLE", num: "925", scale: 2},
	SOS: {code: "SOS", num: "706", scale: 2},
	SRD: {code: "SRD", num: "968", scale: 2},
	SSP: {code: "SSP", num: "728", scale: 2},
	STN: {code: "STN", num: "930", scale: 2},
	SVC: {code: "SVC", num: "222", scale: 2},
	SYP: {code: "SYP", num: "760", scale: 2},
	SZL: {code: "SZL", num: "748", scale: 2},
	THB: {code: "THB", num: "764", scale: 2},
	TJS: {code: "TJS", num: "972", scale: 2},
	TMT: {code: "TMT", num: "934", scale: 2},
	TND: {code: "TND", num: "788", scale: 3},
	TOP: {code: "TOP", num: "776", scale: 2},
	TRY: {code: "TRY", num: "949", scale: 2},
	TTD: {code: "TTD", num: "780", scale: 2},
	TWD: {code: "TWD", num: "901", scale: 2},
	TZS: {code: "TZS", num: "834", scale: 2},
	UAH: {code: "UAH", num: "980", scale: 2},
	UGX: {code: "UGX", num: "800", scale: 0},
	USD: {code: "USD", num: "840", scale: 2},
	USN: {code: "USN", num: "997", scale: 2},
	UYI: {code: "UYI", num: "940", scale: 0},
	UYU: {code: "UYU", num: "858", scale: 2},
	UYW: {code: "UYW", num: "927", scale: 4},
	UZS: {code: "UZS", num: "860", scale: 2},
	VED: {code: "VED", num: "926", scale: 2},
	VES: {code: "VES", num: "928", scale: 2},
	VND: {code: "VND", num: "704", scale: 0},
	VUV: {code: "VUV", num: "548", scale: 0},
	WST: {code: "WST", num: "882", scale: 2},
	XAF: {code: "XAF", num: "950", scale: 0},
	XCD: {code: "XCD", num: "951", scale: 2},
	XOF: {code: "XOF", num: "952", scale: 0},
	XPF: {code: "XPF", num: "953", scale: 0},
	YER: {code: "YER", num: "886", scale: 2},
	ZAR: {code: "ZAR", num: "710", scale: 2},
	ZMW: {code: "ZMW", num: "967", scale: 2},
	ZWG: {code: "ZWG", num: "924", scale: 2},
}
