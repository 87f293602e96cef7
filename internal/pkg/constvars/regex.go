package constvars

const (
	RegexEmail              = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexAlphanumeric       = `^[a-zA-Z0-9]+$`
	RegexHexColorCode       = `^#?([a-fA-F0-9]{6}|[a-fA-F0-9]{3})$`
	RegexPhoneNumberGeneral = `^\+?[1-9]\d{9,14}$`
)
