// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Static classification tables versioned with the engine: the stoplist of
// tags excluded from topic analysis, and the region definitions used by the
// geographic classifier. Both can be overridden from configuration; these
// are the shipped defaults for the channel the dataset comes from.
package services

// DefaultStopTags lists the normalized tags excluded from tag-frequency
// computations: the show's own name and channel, its hosts, and generic
// category words that carry no topical signal. Matching is done after
// lowercase/trim normalization.
var DefaultStopTags = []string{
	// Show & channel
	"c dans l'air", "cdanslair", "cdl", "#cdanslair",
	"france 5", "france 2", "émission", "tv",
	// Hosts
	"caroline roux", "aurélie casse", "salhia brakhlia",
	"axel de tarlé", "axel tarlé", "bruce toussaint",
	// Generic category words
	"actu", "actualité", "news", "direct",
	"politique", "économie", "economie", "société", "débat",
	"géopolitique", "france",
}

// GeoRegion is one entry of the static region table: a display name, its
// ISO-3166-1 alpha-3 code, the canonical search term for downstream
// drill-down links, and the lowercase keywords (place names, capitals, and
// leader names) that identify a mention of the region.
type GeoRegion struct {
	Name       string   `toml:"name"`
	ISO        string   `toml:"iso"`
	SearchTerm string   `toml:"search_term"`
	Keywords   []string `toml:"keywords"`
}

// DefaultRegions is the shipped region table. Keywords are matched at word
// boundaries, so short names like "mali" or "niger" are safe to list even
// though they appear inside unrelated words.
var DefaultRegions = []GeoRegion{
	{Name: "Ukraine", ISO: "UKR", SearchTerm: "ukraine", Keywords: []string{"ukraine", "ukrainien", "ukrainienne", "kiev", "kyiv", "zelensky", "donbass", "crimée"}},
	{Name: "Russie", ISO: "RUS", SearchTerm: "russie", Keywords: []string{"russie", "russe", "moscou", "poutine", "kremlin"}},
	{Name: "États-Unis", ISO: "USA", SearchTerm: "états-unis", Keywords: []string{"états-unis", "etats-unis", "usa", "américain", "américaine", "washington", "biden", "trump", "maison blanche"}},
	{Name: "Chine", ISO: "CHN", SearchTerm: "chine", Keywords: []string{"chine", "chinois", "chinoise", "pékin", "xi jinping", "taïwan", "taiwan"}},
	{Name: "Israël", ISO: "ISR", SearchTerm: "israël", Keywords: []string{"israël", "israel", "israélien", "israélienne", "tel aviv", "netanyahou", "netanyahu"}},
	{Name: "Palestine", ISO: "PSE", SearchTerm: "gaza", Keywords: []string{"palestine", "palestinien", "palestinienne", "gaza", "cisjordanie", "hamas"}},
	{Name: "Iran", ISO: "IRN", SearchTerm: "iran", Keywords: []string{"iran", "iranien", "iranienne", "téhéran", "khamenei", "mollahs"}},
	{Name: "Royaume-Uni", ISO: "GBR", SearchTerm: "royaume-uni", Keywords: []string{"royaume-uni", "angleterre", "britannique", "londres", "brexit"}},
	{Name: "Allemagne", ISO: "DEU", SearchTerm: "allemagne", Keywords: []string{"allemagne", "allemand", "allemande", "berlin", "merkel", "scholz"}},
	{Name: "Italie", ISO: "ITA", SearchTerm: "italie", Keywords: []string{"italie", "italien", "italienne", "rome", "meloni"}},
	{Name: "Espagne", ISO: "ESP", SearchTerm: "espagne", Keywords: []string{"espagne", "espagnol", "espagnole", "madrid", "catalogne"}},
	{Name: "Turquie", ISO: "TUR", SearchTerm: "turquie", Keywords: []string{"turquie", "turc", "turque", "ankara", "istanbul", "erdogan"}},
	{Name: "Syrie", ISO: "SYR", SearchTerm: "syrie", Keywords: []string{"syrie", "syrien", "syrienne", "damas", "assad", "alep"}},
	{Name: "Liban", ISO: "LBN", SearchTerm: "liban", Keywords: []string{"liban", "libanais", "libanaise", "beyrouth", "hezbollah"}},
	{Name: "Mali", ISO: "MLI", SearchTerm: "mali", Keywords: []string{"mali", "malien", "malienne", "bamako", "barkhane"}},
	{Name: "Niger", ISO: "NER", SearchTerm: "niger", Keywords: []string{"niger", "nigérien", "nigérienne", "niamey"}},
	{Name: "Algérie", ISO: "DZA", SearchTerm: "algérie", Keywords: []string{"algérie", "algérien", "algérienne", "alger", "tebboune"}},
	{Name: "Maroc", ISO: "MAR", SearchTerm: "maroc", Keywords: []string{"maroc", "marocain", "marocaine", "rabat"}},
	{Name: "Tunisie", ISO: "TUN", SearchTerm: "tunisie", Keywords: []string{"tunisie", "tunisien", "tunisienne", "tunis"}},
	{Name: "Afghanistan", ISO: "AFG", SearchTerm: "afghanistan", Keywords: []string{"afghanistan", "afghan", "afghane", "kaboul", "talibans"}},
	{Name: "Inde", ISO: "IND", SearchTerm: "inde", Keywords: []string{"inde", "indien", "indienne", "new delhi", "modi"}},
	{Name: "Japon", ISO: "JPN", SearchTerm: "japon", Keywords: []string{"japon", "japonais", "japonaise", "tokyo"}},
	{Name: "Brésil", ISO: "BRA", SearchTerm: "brésil", Keywords: []string{"brésil", "brésilien", "brésilienne", "brasilia", "lula", "bolsonaro"}},
	{Name: "Corée du Nord", ISO: "PRK", SearchTerm: "corée du nord", Keywords: []string{"corée du nord", "nord-coréen", "pyongyang", "kim jong-un"}},
	{Name: "Arabie saoudite", ISO: "SAU", SearchTerm: "arabie saoudite", Keywords: []string{"arabie saoudite", "saoudien", "saoudienne", "riyad", "mbs"}},
}
