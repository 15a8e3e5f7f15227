package offline

import (
	"fmt"

	"github.com/LinguaLabs/golingo"
)

// phraseOrder fixes the ID set and ordering of every built-in phrase
// table. The same ID resolves to the equivalent phrase in every language.
var phraseOrder = []string{
	"greeting",
	"farewell",
	"thanks",
	"please",
	"yes",
	"no",
	"excuse-me",
	"help",
	"how-much",
	"where-bathroom",
	"i-dont-understand",
	"do-you-speak-english",
	"the-bill-please",
	"where-station",
}

// phraseTables holds the built-in travel phrase content per language.
var phraseTables = map[string]map[string]string{
	"en": {
		"greeting":             "Hello",
		"farewell":             "Goodbye",
		"thanks":               "Thank you",
		"please":               "Please",
		"yes":                  "Yes",
		"no":                   "No",
		"excuse-me":            "Excuse me",
		"help":                 "Help!",
		"how-much":             "How much does it cost?",
		"where-bathroom":       "Where is the bathroom?",
		"i-dont-understand":    "I don't understand",
		"do-you-speak-english": "Do you speak English?",
		"the-bill-please":      "The bill, please",
		"where-station":        "Where is the train station?",
	},
	"es": {
		"greeting":             "Hola",
		"farewell":             "Adiós",
		"thanks":               "Gracias",
		"please":               "Por favor",
		"yes":                  "Sí",
		"no":                   "No",
		"excuse-me":            "Disculpe",
		"help":                 "¡Ayuda!",
		"how-much":             "¿Cuánto cuesta?",
		"where-bathroom":       "¿Dónde está el baño?",
		"i-dont-understand":    "No entiendo",
		"do-you-speak-english": "¿Habla inglés?",
		"the-bill-please":      "La cuenta, por favor",
		"where-station":        "¿Dónde está la estación de tren?",
	},
	"fr": {
		"greeting":             "Bonjour",
		"farewell":             "Au revoir",
		"thanks":               "Merci",
		"please":               "S'il vous plaît",
		"yes":                  "Oui",
		"no":                   "Non",
		"excuse-me":            "Excusez-moi",
		"help":                 "Au secours !",
		"how-much":             "Combien ça coûte ?",
		"where-bathroom":       "Où sont les toilettes ?",
		"i-dont-understand":    "Je ne comprends pas",
		"do-you-speak-english": "Parlez-vous anglais ?",
		"the-bill-please":      "L'addition, s'il vous plaît",
		"where-station":        "Où est la gare ?",
	},
	"de": {
		"greeting":             "Hallo",
		"farewell":             "Auf Wiedersehen",
		"thanks":               "Danke",
		"please":               "Bitte",
		"yes":                  "Ja",
		"no":                   "Nein",
		"excuse-me":            "Entschuldigung",
		"help":                 "Hilfe!",
		"how-much":             "Wie viel kostet das?",
		"where-bathroom":       "Wo ist die Toilette?",
		"i-dont-understand":    "Ich verstehe nicht",
		"do-you-speak-english": "Sprechen Sie Englisch?",
		"the-bill-please":      "Die Rechnung, bitte",
		"where-station":        "Wo ist der Bahnhof?",
	},
	"it": {
		"greeting":             "Ciao",
		"farewell":             "Arrivederci",
		"thanks":               "Grazie",
		"please":               "Per favore",
		"yes":                  "Sì",
		"no":                   "No",
		"excuse-me":            "Scusi",
		"help":                 "Aiuto!",
		"how-much":             "Quanto costa?",
		"where-bathroom":       "Dov'è il bagno?",
		"i-dont-understand":    "Non capisco",
		"do-you-speak-english": "Parla inglese?",
		"the-bill-please":      "Il conto, per favore",
		"where-station":        "Dov'è la stazione?",
	},
	"pt": {
		"greeting":             "Olá",
		"farewell":             "Adeus",
		"thanks":               "Obrigado",
		"please":               "Por favor",
		"yes":                  "Sim",
		"no":                   "Não",
		"excuse-me":            "Com licença",
		"help":                 "Socorro!",
		"how-much":             "Quanto custa?",
		"where-bathroom":       "Onde fica o banheiro?",
		"i-dont-understand":    "Não entendo",
		"do-you-speak-english": "Você fala inglês?",
		"the-bill-please":      "A conta, por favor",
		"where-station":        "Onde fica a estação de trem?",
	},
	"ja": {
		"greeting":             "こんにちは",
		"farewell":             "さようなら",
		"thanks":               "ありがとうございます",
		"please":               "お願いします",
		"yes":                  "はい",
		"no":                   "いいえ",
		"excuse-me":            "すみません",
		"help":                 "助けて！",
		"how-much":             "いくらですか？",
		"where-bathroom":       "トイレはどこですか？",
		"i-dont-understand":    "わかりません",
		"do-you-speak-english": "英語を話せますか？",
		"the-bill-please":      "お会計をお願いします",
		"where-station":        "駅はどこですか？",
	},
}

// BuiltinPhrases returns the phrase table for a language in the fixed
// phrase order. Languages without a curated table get a synthesized one, so
// phrase IDs still line up across any pack pair.
func BuiltinPhrases(code string) []golingo.Phrase {
	code = golingo.NormalizeLang(code)

	table, ok := phraseTables[code]
	phrases := make([]golingo.Phrase, 0, len(phraseOrder))
	for _, id := range phraseOrder {
		text := ""
		if ok {
			text = table[id]
		}
		if text == "" {
			text = fmt.Sprintf("%s (%s)", phraseTables["en"][id], code)
		}
		phrases = append(phrases, golingo.Phrase{ID: id, Text: text})
	}
	return phrases
}
