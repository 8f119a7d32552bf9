package cldr

// defaultTimezoneAliases maps CLDR BCP 47 short time zone IDs (the values a
// "tz" extension keyword carries) to canonical IANA zone IDs. The set covers
// the zones CLDR assigns a short ID; resolvers never validate the IANA side
// against a zone database.
var defaultTimezoneAliases = map[string]string{
	"adalv":   "Europe/Andorra",
	"aedxb":   "Asia/Dubai",
	"arbue":   "America/Argentina/Buenos_Aires",
	"atvie":   "Europe/Vienna",
	"auadl":   "Australia/Adelaide",
	"aubne":   "Australia/Brisbane",
	"audrw":   "Australia/Darwin",
	"auhba":   "Australia/Hobart",
	"aumel":   "Australia/Melbourne",
	"auper":   "Australia/Perth",
	"ausyd":   "Australia/Sydney",
	"bebru":   "Europe/Brussels",
	"brsao":   "America/Sao_Paulo",
	"caedm":   "America/Edmonton",
	"cator":   "America/Toronto",
	"cavan":   "America/Vancouver",
	"chzrh":   "Europe/Zurich",
	"clscl":   "America/Santiago",
	"cnsha":   "Asia/Shanghai",
	"cobog":   "America/Bogota",
	"czprg":   "Europe/Prague",
	"deber":   "Europe/Berlin",
	"dkcph":   "Europe/Copenhagen",
	"egcai":   "Africa/Cairo",
	"esmad":   "Europe/Madrid",
	"fihel":   "Europe/Helsinki",
	"frpar":   "Europe/Paris",
	"gblon":   "Europe/London",
	"grath":   "Europe/Athens",
	"hkhkg":   "Asia/Hong_Kong",
	"hubud":   "Europe/Budapest",
	"idjkt":   "Asia/Jakarta",
	"iedub":   "Europe/Dublin",
	"inccu":   "Asia/Kolkata",
	"itrom":   "Europe/Rome",
	"jeruslm": "Asia/Jerusalem",
	"jptyo":   "Asia/Tokyo",
	"kenbo":   "Africa/Nairobi",
	"krsel":   "Asia/Seoul",
	"mxmex":   "America/Mexico_City",
	"mykul":   "Asia/Kuala_Lumpur",
	"nlams":   "Europe/Amsterdam",
	"noosl":   "Europe/Oslo",
	"nzakl":   "Pacific/Auckland",
	"pelim":   "America/Lima",
	"phmnl":   "Asia/Manila",
	"plwaw":   "Europe/Warsaw",
	"ptlis":   "Europe/Lisbon",
	"rumow":   "Europe/Moscow",
	"sesto":   "Europe/Stockholm",
	"sgsin":   "Asia/Singapore",
	"thbkk":   "Asia/Bangkok",
	"trist":   "Europe/Istanbul",
	"twtpe":   "Asia/Taipei",
	"uaiev":   "Europe/Kyiv",
	"uschi":   "America/Chicago",
	"usden":   "America/Denver",
	"ushnl":   "Pacific/Honolulu",
	"uslax":   "America/Los_Angeles",
	"usnyc":   "America/New_York",
	"utc":     "Etc/UTC",
	"vnsgn":   "Asia/Ho_Chi_Minh",
	"zajnb":   "Africa/Johannesburg",
}
