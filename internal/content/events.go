package content

import "sagetrail/internal/domain"

// eventTable maps exact event tile names to their fixed effects. Any other
// event-kind tile is a no-op landing.
var eventTable = map[string]domain.EventDetail{
	"Trapped at Kuang": {
		Title:       "Besieged at Kuang",
		Content:     "In 495 BC the men of Kuang mistook Confucius for Yang Hu, who had once raided their town, and surrounded his party. He answered calmly: if Heaven does not intend this culture to perish, what can the men of Kuang do to me?",
		EffectLabel: "Held under siege — pause one turn",
		EffectType:  domain.EventPause,
	},
	"Zheng City Gate": {
		Title:       "A Stray Dog at the Gate",
		Content:     "Separated from his disciples in Zheng, Confucius waited alone at the east gate. A passerby described him as forlorn as a stray dog, and he laughed in agreement.",
		EffectLabel: "Scattered and weary — lose one meat",
		EffectType:  domain.EventLoseMeat,
	},
	"Between Chen and Cai": {
		Title:       "Provisions Run Out",
		Content:     "Caught between the armies of Chen and Cai, the party ran out of grain and followers fell ill. Confucius kept teaching and playing the qin, telling Zilu that the gentleman holds firm in hardship.",
		EffectLabel: "Stranded without grain — pause one turn",
		EffectType:  domain.EventPause,
	},
	"Duke of She Asks About Governance": {
		Title:       "The Duke of She Asks About Governance",
		Content:     "The Duke of She asked about government. Confucius replied: make those who are near pleased, and those who are far away will come.",
		EffectLabel: "Benevolent counsel — gain one meat",
		EffectType:  domain.EventGainMeat,
	},
}

// EventByTileName returns the fixed event for an event tile name.
func EventByTileName(name string) (domain.EventDetail, bool) {
	detail, ok := eventTable[name]
	return detail, ok
}

// EventTileNames returns the names recognized by the event table.
func EventTileNames() []string {
	names := make([]string, 0, len(eventTable))
	for name := range eventTable {
		names = append(names, name)
	}
	return names
}
