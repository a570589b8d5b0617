package service

import (
	"strings"

	"github.com/smartcity/weatherlookup/internal/domain"
)

// iconRule maps any of its keywords to a symbol.
type iconRule struct {
	keywords []string
	symbol   domain.IconSymbol
}

// Order matters: the first matching rule wins.
var iconRules = []iconRule{
	{[]string{"clear", "sunny"}, domain.IconSun},
	{[]string{"partly cloudy", "partly"}, domain.IconPartlyCloudy},
	{[]string{"cloudy", "overcast"}, domain.IconCloudy},
	{[]string{"thunder", "storm"}, domain.IconThunderstorm},
	{[]string{"heavy rain", "downpour"}, domain.IconHeavyRain},
	{[]string{"rain", "shower"}, domain.IconRain},
	{[]string{"drizzle", "light rain"}, domain.IconDrizzle},
	{[]string{"heavy snow", "blizzard"}, domain.IconHeavySnow},
	{[]string{"snow", "sleet"}, domain.IconSnow},
	{[]string{"fog", "mist", "haze"}, domain.IconFog},
}

// ClassifyIcon maps a free-text weather description to an icon symbol.
// It always returns a value; unknown text maps to domain.IconDefault.
func ClassifyIcon(description string) domain.IconSymbol {
	desc := strings.ToLower(description)
	for _, rule := range iconRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.symbol
			}
		}
	}
	return domain.IconDefault
}
