package fixtures

import "github.com/wordbook/dictionary/internal/word"

// Defaults returns the built-in starter vocabulary.
func Defaults() []word.Draft {
	return []word.Draft{
		{
			Word:         "Serendipity",
			Phonetic:     "/ˌserənˈdɪpɪti/",
			PartOfSpeech: "Noun",
			Definitions:  []string{"The occurrence and development of events by chance in a happy or beneficial way."},
			Examples:     []string{"We found the restaurant by pure serendipity."},
			Synonyms:     []string{"chance", "luck", "fortune"},
		},
		{
			Word:         "Ephemeral",
			Phonetic:     "/ɪˈfem(ə)rəl/",
			PartOfSpeech: "Adjective",
			Definitions:  []string{"Lasting for a very short time."},
			Examples:     []string{"Fashions are ephemeral, changing with every season."},
			Synonyms:     []string{"transient", "fleeting", "temporary"},
			Antonyms:     []string{"permanent", "lasting", "enduring"},
		},
		{
			Word:         "Luminous",
			Phonetic:     "/ˈluːmɪnəs/",
			PartOfSpeech: "Adjective",
			Definitions:  []string{"Full of or shedding light; bright or shining, especially in the dark."},
			Examples:     []string{"The luminous dial on his watch glowed in the darkness."},
			Synonyms:     []string{"bright", "radiant", "glowing"},
			Antonyms:     []string{"dark", "dim", "dull"},
		},
		{
			Word:         "Petrichor",
			Phonetic:     "/ˈpetrɪkɔː/",
			PartOfSpeech: "Noun",
			Definitions:  []string{"A pleasant smell that frequently accompanies the first rain after a long period of warm, dry weather."},
			Examples:     []string{"The air was filled with the scent of petrichor after the storm."},
			Synonyms:     []string{"earthy smell", "rain scent"},
		},
		{
			Word:         "Mellifluous",
			Phonetic:     "/meˈlɪfluəs/",
			PartOfSpeech: "Adjective",
			Definitions:  []string{"(of a voice or words) sweet or musical; pleasant to hear."},
			Examples:     []string{"She had a rich, mellifluous voice that captivated the audience."},
			Synonyms:     []string{"sweet", "melodious", "dulcet"},
			Antonyms:     []string{"harsh", "grating", "discordant"},
		},
		{
			Word:         "Solitude",
			Phonetic:     "/ˈsɒlɪtjuːd/",
			PartOfSpeech: "Noun",
			Definitions:  []string{"The state or situation of being alone."},
			Examples:     []string{"He enjoyed the peace and solitude of the woods."},
			Synonyms:     []string{"isolation", "seclusion", "loneliness"},
			Antonyms:     []string{"company", "companionship", "togetherness"},
		},
		{
			Word:         "Aurora",
			Phonetic:     "/ɔːˈrɔːrə/",
			PartOfSpeech: "Noun",
			Definitions:  []string{"A natural electrical phenomenon characterized by the appearance of streamers of reddish or greenish light in the sky."},
			Examples:     []string{"We traveled north to see the aurora borealis."},
			Synonyms:     []string{"northern lights", "polar lights"},
		},
		{
			Word:         "Ineffable",
			Phonetic:     "/ɪnˈefəb(ə)l/",
			PartOfSpeech: "Adjective",
			Definitions:  []string{"Too great or extreme to be expressed or described in words."},
			Examples:     []string{"The ineffable beauty of the sunset left us speechless."},
			Synonyms:     []string{"indescribable", "inexpressible", "unspeakable"},
			Antonyms:     []string{"expressible", "definable", "describable"},
		},
		{
			Word:         "Sonorous",
			Phonetic:     "/ˈsɒnərəs/",
			PartOfSpeech: "Adjective",
			Definitions:  []string{"(of a person's voice or other sound) imposingly deep and full."},
			Examples:     []string{"The actor had a sonorous voice that filled the theater."},
			Synonyms:     []string{"resonant", "rich", "deep"},
			Antonyms:     []string{"thin", "weak", "quiet"},
		},
		{
			Word:         "Eloquence",
			Phonetic:     "/ˈeləkwəns/",
			PartOfSpeech: "Noun",
			Definitions:  []string{"Fluent or persuasive speaking or writing."},
			Examples:     []string{"A preacher of great power and eloquence."},
			Synonyms:     []string{"articulateness", "fluency", "expressiveness"},
			Antonyms:     []string{"inarticulateness", "ineloquence"},
		},
		{
			Word:         "Ethereal",
			Phonetic:     "/ɪˈθɪərɪəl/",
			PartOfSpeech: "Adjective",
			Definitions:  []string{"Extremely delicate and light in a way that seems too perfect for this world."},
			Examples:     []string{"Her ethereal beauty captivated everyone in the room."},
			Synonyms:     []string{"delicate", "exquisite", "dainty", "graceful", "heavenly"},
			Antonyms:     []string{"substantial", "earthly", "tangible", "heavy"},
		},
	}
}
