package content

import "sagetrail/internal/domain"

func position(i int) *int { return &i }

// DefaultTrialPool returns the built-in trial questions drawn on state tiles.
func DefaultTrialPool() []domain.TrialCard {
	return []domain.TrialCard{
		{
			Prompt:      "Which disciple was praised for finding joy in a single bowl of rice and a ladle of water?",
			Options:     [4]string{"Zilu", "Yan Hui", "Zigong", "Ran Qiu"},
			AnswerIndex: 1,
			Explanation: "Yan Hui lived in a shabby lane without losing his joy, which Confucius held up as true virtue.",
		},
		{
			Prompt:      "\"Is it not a pleasure, having learned something, to...\" — complete the opening line of the Analects.",
			Options:     [4]string{"teach it to others", "practice it in due time", "write it on bamboo", "recite it aloud"},
			AnswerIndex: 1,
			Explanation: "The Analects opens: to learn and practice it in due time, is that not a pleasure?",
		},
		{
			Prompt:      "What did Confucius say a gentleman does in adversity?",
			Options:     [4]string{"Seeks a patron", "Holds firm", "Returns home", "Blames Heaven"},
			AnswerIndex: 1,
			Explanation: "Stranded between Chen and Cai he taught that the gentleman holds firm in hardship.",
		},
		{
			Prompt:      "At what age did Confucius say he took his stand?",
			Options:     [4]string{"Fifteen", "Thirty", "Forty", "Fifty"},
			AnswerIndex: 1,
			Explanation: "At fifteen he set his heart on learning; at thirty he took his stand.",
		},
		{
			Prompt:      "Which virtue did Confucius name as the single thread running through his teaching?",
			Options:     [4]string{"Courage", "Reciprocity", "Frugality", "Eloquence"},
			AnswerIndex: 1,
			Explanation: "Do not impose on others what you do not wish for yourself — the thread of shu, reciprocity.",
		},
		{
			Prompt:      "What answer did Confucius give the Duke of She about good government?",
			Options:     [4]string{"Strong walls and full granaries", "Near ones pleased, far ones drawn", "Harsh law, swift punishment", "Alliances with powerful states"},
			AnswerIndex: 1,
			Explanation: "Good government makes those near pleased and those far away come.",
		},
		{
			Prompt:      "Which disciple was known for courage and died straightening his cap?",
			Options:     [4]string{"Zilu", "Zengzi", "Min Sun", "Zigong"},
			AnswerIndex: 0,
			Explanation: "Zilu, the boldest of the disciples, fell in Wei and tied his cap strings as he died.",
		},
		{
			Prompt:      "\"When three walk together...\" — what did Confucius say follows?",
			Options:     [4]string{"One must lead", "My teacher is among them", "Two will quarrel", "The way is lost"},
			AnswerIndex: 1,
			Explanation: "Among any three walkers there is always one who can be my teacher.",
		},
		{
			Prompt:      "What trade did Zigong master besides study?",
			Options:     [4]string{"Farming", "Commerce", "Archery", "Medicine"},
			AnswerIndex: 1,
			Explanation: "Zigong grew wealthy through trade and served as a diplomat for Lu.",
		},
		{
			Prompt:      "What did Confucius compare a gentleman's errors to?",
			Options:     [4]string{"Spilled water", "Eclipses of sun and moon", "A cracked bell", "Footprints in snow"},
			AnswerIndex: 1,
			Explanation: "His errors are like eclipses: all see them, and all look up when he corrects them.",
		},
	}
}

// DefaultFatePool returns the built-in fate cards.
func DefaultFatePool() []domain.FateCard {
	return []domain.FateCard{
		{
			Title:       "Gift of the Duke",
			Description: "A duke admires your counsel and sends sacrificial meat from his own altar.",
			Effect:      domain.CardEffect{Meat: 2},
		},
		{
			Title:       "Slander at Court",
			Description: "A jealous minister whispers against you; your provisions are withheld.",
			Effect:      domain.CardEffect{Meat: -1},
		},
		{
			Title:       "Rites of Mourning",
			Description: "You stop to observe the full mourning rites for an old friend.",
			Effect:      domain.CardEffect{Pause: true},
		},
		{
			Title:       "Summons to Wei",
			Description: "A messenger arrives: the court of Wei requests your presence at once.",
			Effect:      domain.CardEffect{ForcePosition: position(1)},
		},
		{
			Title:       "Zilu Stands Guard",
			Description: "Your boldest disciple insists on trading places to shield you from bandits.",
			Effect:      domain.CardEffect{Special: domain.SpecialSwapWithTarget},
		},
		{
			Title:       "Blessing of Heaven",
			Description: "\"Heaven has given me this virtue — what can harm me?\" You walk on untouched.",
			Effect:      domain.CardEffect{Special: domain.SpecialGrantProtection},
		},
		{
			Title:       "Lost on the Road",
			Description: "The cart track forks and the guide is gone; you camp and wait for dawn.",
			Effect:      domain.CardEffect{Meat: -1, Pause: true},
		},
		{
			Title:       "Harvest Festival",
			Description: "Villagers celebrating the harvest share their offerings with your party.",
			Effect:      domain.CardEffect{Meat: 1},
		},
	}
}

// DefaultChancePool returns the built-in chance cards.
func DefaultChancePool() []domain.ChanceCard {
	return []domain.ChanceCard{
		{
			Title:     "Debate at the Gate",
			Challenge: "A sophist challenges you before a crowd. Roll the die: even wins the day, odd sours it.",
			Effect:    domain.CardEffect{Special: domain.SpecialRollOddEven},
		},
		{
			Title:     "A Student's Gift",
			Challenge: "A new student brings dried meat as tuition, as the custom requires.",
			Effect:    domain.CardEffect{Meat: 1},
		},
		{
			Title:     "Broken Axle",
			Challenge: "Your cart's axle snaps on the mountain road; repairs cost a day.",
			Effect:    domain.CardEffect{Pause: true},
		},
		{
			Title:     "Shortcut Through Song",
			Challenge: "A sympathetic officer shows you a quiet road through Song.",
			Effect:    domain.CardEffect{ForcePosition: position(5)},
		},
		{
			Title:     "River Ferry",
			Challenge: "The ferryman recognizes the famous teacher and carries you ahead to Chen.",
			Effect:    domain.CardEffect{ForcePosition: position(11)},
		},
		{
			Title:     "Generous Innkeeper",
			Challenge: "An innkeeper refuses payment and adds provisions for the road.",
			Effect:    domain.CardEffect{Meat: 1},
		},
		{
			Title:     "Questioned by Soldiers",
			Challenge: "Border soldiers hold your party for questioning. Roll the die: even talks you through.",
			Effect:    domain.CardEffect{Special: domain.SpecialRollOddEven},
		},
		{
			Title:     "Spoiled Provisions",
			Challenge: "Rain soaks the provision cart; a share of the meat is lost.",
			Effect:    domain.CardEffect{Meat: -1},
		},
	}
}
