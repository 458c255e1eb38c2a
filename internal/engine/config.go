package engine

import "github.com/fbarros/fatura/internal/model"

// CategoryConfig is one entry of the classification taxonomy. The slice
// order in Config.Categories is the tie-break rule: on overlapping keywords
// the earlier category wins.
type CategoryConfig struct {
	Slug     string   `mapstructure:"slug"`
	Label    string   `mapstructure:"label"`
	Icon     string   `mapstructure:"icon"`
	Keywords []string `mapstructure:"keywords"`
}

// Category returns the display identity of this entry.
func (c CategoryConfig) Category() model.Category {
	return model.Category{Slug: c.Slug, Label: c.Label, Icon: c.Icon}
}

// SubscriptionProfile describes a well-known recurring service and its
// expected charge range. Profile order is the match tie-break, like
// categories.
type SubscriptionProfile struct {
	Key        string  `mapstructure:"key"`  // lowercase substring matched against descriptions
	Name       string  `mapstructure:"name"` // display name
	TypicalLow float64 `mapstructure:"typical_low"`
	TypicalMax float64 `mapstructure:"typical_max"`
}

// Config is the read-only business configuration of an Analyzer. Keyword
// lists, profiles, and thresholds are fixtures, not contracts; callers may
// override any of them.
type Config struct {
	Categories     []CategoryConfig      `mapstructure:"categories"`
	Fallback       CategoryConfig        `mapstructure:"fallback"`
	Subscriptions  []SubscriptionProfile `mapstructure:"subscriptions"`
	ChargeKeywords []string              `mapstructure:"charge_keywords"`

	// HighValueMultiplier and HighValueFloor gate the high-value anomaly
	// test: both conditions must hold before a transaction is flagged.
	HighValueMultiplier float64 `mapstructure:"high_value_multiplier"`
	HighValueFloor      float64 `mapstructure:"high_value_floor"`

	// RecurrencePrefix is the normalized-key length (in runes) used to
	// group recurring charges; RecurrenceCap bounds the candidate list.
	RecurrencePrefix int `mapstructure:"recurrence_prefix"`
	RecurrenceCap    int `mapstructure:"recurrence_cap"`

	// ClassifiedCap bounds the per-transaction display slice of a batch
	// analysis.
	ClassifiedCap int `mapstructure:"classified_cap"`
}

// DefaultConfig returns the stock taxonomy, subscription profiles, and
// thresholds. Keywords target Brazilian statements, matching the merchants
// the tool was built around.
func DefaultConfig() Config {
	return Config{
		Categories: []CategoryConfig{
			{
				Slug:  "food",
				Label: "Food",
				Icon:  "🍽️",
				Keywords: []string{
					"ifood", "uber eats", "rappi", "zé delivery", "restaurante", "lanchonete",
					"padaria", "supermercado", "mercado", "hortifruti", "açougue", "pão de açucar",
					"carrefour", "extra", "atacadão", "assai", "burger", "pizza", "sushi",
					"mcdonald", "subway", "starbucks", "outback", "madero",
				},
			},
			{
				Slug:  "transport",
				Label: "Transport",
				Icon:  "🚗",
				Keywords: []string{
					"uber", "99", "cabify", "posto", "shell", "ipiranga", "br distribuidora",
					"estacionamento", "parking", "pedagio", "sem parar", "conectcar", "move mais",
					"metrô", "cptm", "bilhete", "recarga transporte",
				},
			},
			{
				Slug:  "housing",
				Label: "Housing",
				Icon:  "🏠",
				Keywords: []string{
					"aluguel", "condominio", "iptu", "luz", "energia", "enel", "cpfl", "cemig",
					"água", "sabesp", "copasa", "gás", "comgás", "naturgy", "internet", "vivo",
					"claro", "tim", "sky",
				},
			},
			{
				Slug:  "subscriptions",
				Label: "Subscriptions",
				Icon:  "📱",
				Keywords: []string{
					"netflix", "spotify", "amazon prime", "disney", "hbo", "globoplay", "deezer",
					"apple", "google", "microsoft", "adobe", "dropbox", "icloud", "youtube premium",
					"twitch", "crunchyroll", "paramount", "star+", "gympass", "totalpass",
				},
			},
			{
				Slug:  "health",
				Label: "Health",
				Icon:  "💊",
				Keywords: []string{
					"farmacia", "drogaria", "droga", "drogasil", "pacheco", "araújo", "pague menos",
					"hospital", "clinica", "laboratorio", "médico", "consulta", "exame", "plano saude",
					"unimed", "amil", "bradesco saude", "sulamerica", "academia", "smart fit",
				},
			},
			{
				Slug:  "education",
				Label: "Education",
				Icon:  "📚",
				Keywords: []string{
					"escola", "faculdade", "universidade", "curso", "udemy", "coursera", "alura",
					"descomplica", "estrategia", "livro", "livraria", "amazon books", "kindle",
				},
			},
			{
				Slug:  "leisure",
				Label: "Leisure",
				Icon:  "🎬",
				Keywords: []string{
					"cinema", "cinemark", "uci", "kinoplex", "teatro", "show", "ingresso", "sympla",
					"eventim", "ticketmaster", "parque", "viagem", "hotel", "airbnb", "booking",
					"decolar", "latam", "gol", "azul", "cvc", "hurb",
				},
			},
			{
				Slug:  "shopping",
				Label: "Shopping",
				Icon:  "🛒",
				Keywords: []string{
					"amazon", "mercado livre", "magalu", "magazine luiza", "americanas", "shopee",
					"shein", "aliexpress", "casas bahia", "renner", "riachuelo", "c&a", "zara",
					"centauro", "netshoes", "nike", "adidas",
				},
			},
			{
				Slug:  "financial_services",
				Label: "Financial services",
				Icon:  "🏦",
				Keywords: []string{
					"anuidade", "tarifa", "iof", "juros", "multa", "encargos", "seguro cartao",
					"protecao", "saque", "transferencia",
				},
			},
		},
		Fallback: CategoryConfig{Slug: "other", Label: "Other", Icon: "❓"},
		Subscriptions: []SubscriptionProfile{
			{Key: "netflix", Name: "Netflix", TypicalLow: 22.90, TypicalMax: 55.90},
			{Key: "spotify", Name: "Spotify", TypicalLow: 21.90, TypicalMax: 34.90},
			{Key: "amazon prime", Name: "Amazon Prime", TypicalLow: 14.90, TypicalMax: 19.90},
			{Key: "disney", Name: "Disney+", TypicalLow: 27.90, TypicalMax: 43.90},
			{Key: "hbo max", Name: "HBO Max", TypicalLow: 19.90, TypicalMax: 34.90},
			{Key: "youtube premium", Name: "YouTube Premium", TypicalLow: 24.90, TypicalMax: 45.90},
			{Key: "apple", Name: "Apple (iCloud/Music/TV)", TypicalLow: 3.50, TypicalMax: 37.90},
			{Key: "google one", Name: "Google One", TypicalLow: 6.99, TypicalMax: 34.99},
			{Key: "gympass", Name: "Gympass", TypicalLow: 49.90, TypicalMax: 249.90},
			{Key: "smart fit", Name: "Smart Fit", TypicalLow: 99.90, TypicalMax: 149.90},
		},
		ChargeKeywords:      []string{"juros", "multa", "encargo", "iof", "tarifa"},
		HighValueMultiplier: 3,
		HighValueFloor:      500,
		RecurrencePrefix:    30,
		RecurrenceCap:       10,
		ClassifiedCap:       20,
	}
}
