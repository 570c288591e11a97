package chat

import "strings"

// Canned responses used when both retrieval and the chat model are
// unavailable. Keyed by language, with a crop-selection variant for
// region/planting questions.

var regionalCropResponses = map[string]string{
	"english": `For crop selection, here are recommendations by Nigerian region:

**Northern Nigeria (Kaduna, Kano, Sokoto):** Sorghum, millet, maize, groundnuts, cotton, tomatoes, onions, pepper. Plant at the start of the rainy season (May-June) and test your soil before planting.

**Middle Belt (Benue, Plateau, Nasarawa):** Yams, cassava, rice, sesame, soybeans, sweet potatoes. Longer growing season, good for crop rotation.

**Southern Nigeria (Lagos, Ogun, Rivers):** Cassava, plantain, oil palm, cocoa, vegetables, maize. Year-round planting possible; focus on drainage.

General tips: start with soil testing (N-P-K, pH), choose drought-resistant varieties in the north, rotate crops, and add organic matter to improve soil structure.`,

	"hausa": `Don zabin amfanin gona, ga shawarwari bisa ga yankunan Najeriya:

**Arewacin Najeriya (Kaduna, Kano, Sokoto):** Dawa, gero, masara, gyada, auduga, tumatir. Shuka a farkon damina (Mayu-Yuni) kuma yi gwajin kasa kafin shuka.

**Tsakiyar Belt (Benue, Plateau):** Doya, rogo, shinkafa, wake.

**Kudancin Najeriya:** Rogo, ayaba, dabino, koko, kayan lambu.`,

	"yoruba": `Fun yiyan irugbin, eyi ni awon imoran nipase agbegbe Naijiria:

**Ariwa Naijiria (Kaduna, Kano, Sokoto):** Oka guinea, oka, agbado, epa, owu, tomati. Gbin ni ibere akoko ojo.

**Agbegbe Aarin (Benue, Plateau):** Isu, ege, iresi, sesame, ewa soya.

**Guusu Naijiria:** Ege, ogede, ope, koko, efo.`,

	"igbo": `Maka nhoro ihe okuku, nke a bu ndumodu site na mpaghara Naijiria:

**Ugwu Naijiria (Kaduna, Kano, Sokoto):** Oka guinea, millet, oka, ahuekere, owu, tomato. Kuo na mmalite oge mmiri ozuzo.

**Middle Belt (Benue, Plateau):** Ji, akpu, osikapa, sesame, soy.

**Ndida Naijiria:** Akpu, ojoko, nkwu, koko, akwukwo nri.`,
}

var genericResponses = map[string]string{
	"english": `Thank you for your question about farming! Here's general guidance:

**Soil health:** Test your soil every 6-12 months for N-P-K and pH (target 6.0-7.0 for most crops). Add organic matter and rotate crops.

**Water management:** Most crops need 25-50mm of water per week. Water early morning, mulch to retain moisture, and consider drip irrigation.

**Pest and disease control:** Inspect crops 2-3 times per week, remove infected plants, use neem oil or soap solution for organic control, and keep good plant spacing for air circulation.

**Fertilizer:** Apply basal fertilizer 2 weeks before planting, first top dressing at 3-4 weeks, second at 6-8 weeks for long-season crops. Compost and poultry manure are good organic alternatives.`,

	"hausa": `Na gode da tambayar ku game da aikin noma! Ga jagora:

**Lafiyar kasa:** Gwada kasarka kowane wata 6-12, kara kwayoyin halitta, yi musayar amfanin gona.

**Kula da ruwa:** Yawancin amfanin gona suna bukatar ruwa 25-50mm a mako. Yi ban ruwa da safe kuma yi amfani da mulch.

**Kare cututtuka:** Duba amfanin gona akai-akai, cire tsire-tsiren da suka kamu da cuta, yi amfani da man neem.`,

	"yoruba": `O seun fun ibeere re nipa ogbin! Eyi ni itosona:

**Ilera ile:** Se idanwo ile re ni gbogbo osu 6-12, safikun ohun alumoni, se iyipada ogbin.

**Isakoso omi:** Pupo julo awon ogbin nilo 25-50mm omi fun ose. Fi omi ni kutukutu owuro, lo mulch.

**Iako kokoro:** Ayewo ogbin nigbagbogbo, yo awon ogbin alaisan kuro, lo epo neem.`,

	"igbo": `Daalu maka ajuju gi banyere oru ugbo! Nke a bu nduzi:

**Ahu ike ala:** Nwalee ala gi kwa onwa 6-12, tinye ihe ndu, gbanwee ihe okuku.

**Njikwa mmiri:** Otutu ihe okuku choro mmiri 25-50mm kwa izu. Gbaa mmiri n'ututu, jiri mulch.

**Nchikwa ahuhu:** Nyochaa ihe okuku mgbe niile, wepu osisi oria, jiri mmanu neem.`,
}

func fallbackResponse(message, language string) string {
	msgLower := strings.ToLower(message)

	regional := strings.Contains(msgLower, "kaduna") ||
		strings.Contains(msgLower, "kano") ||
		strings.Contains(msgLower, "sokoto") ||
		strings.Contains(msgLower, "northern") ||
		(strings.Contains(msgLower, "crop") && strings.Contains(msgLower, "plant"))

	if regional {
		if resp, ok := regionalCropResponses[language]; ok {
			return resp
		}
		return regionalCropResponses["english"]
	}

	if resp, ok := genericResponses[language]; ok {
		return resp
	}
	return genericResponses["english"]
}
