package domain

// IconSymbol is one value of the closed weather icon vocabulary.
type IconSymbol string

const (
	IconSun          IconSymbol = "sun"
	IconPartlyCloudy IconSymbol = "partly-cloudy"
	IconCloudy       IconSymbol = "cloudy"
	IconThunderstorm IconSymbol = "thunderstorm"
	IconHeavyRain    IconSymbol = "heavy-rain"
	IconRain         IconSymbol = "rain"
	IconDrizzle      IconSymbol = "drizzle"
	IconHeavySnow    IconSymbol = "heavy-snow"
	IconSnow         IconSymbol = "snow"
	IconFog          IconSymbol = "fog"
	IconDefault      IconSymbol = "default"
)

var iconGlyphs = map[IconSymbol]string{
	IconSun:          "☀️",
	IconPartlyCloudy: "⛅",
	IconCloudy:       "☁️",
	IconThunderstorm: "⛈️",
	IconHeavyRain:    "⛈️",
	IconRain:         "🌧️",
	IconDrizzle:      "🌦️",
	IconHeavySnow:    "❄️",
	IconSnow:         "❄️",
	IconFog:          "🌫️",
	IconDefault:      "🌤️",
}

// IconSymbols returns the whole vocabulary in classification order.
func IconSymbols() []IconSymbol {
	return []IconSymbol{
		IconSun, IconPartlyCloudy, IconCloudy, IconThunderstorm, IconHeavyRain,
		IconRain, IconDrizzle, IconHeavySnow, IconSnow, IconFog, IconDefault,
	}
}

// Glyph returns the emoji rendered for the symbol.
func (s IconSymbol) Glyph() string {
	if g, ok := iconGlyphs[s]; ok {
		return g
	}
	return iconGlyphs[IconDefault]
}

// Valid reports whether s belongs to the vocabulary.
func (s IconSymbol) Valid() bool {
	_, ok := iconGlyphs[s]
	return ok
}
