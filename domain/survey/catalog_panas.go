package survey

// PANAS: Positive and Negative Affect Schedule, 20 mood adjectives rated 1-5.
// Item 14 ("Взволнованный") belongs to neither scale in this adaptation; the
// scorer documents the exclusion.
func init() {
	registerCatalog(&Catalog{
		Instrument: PANAS,
		Questions: []Question{
			{1, "Заинтересованность"},
			{2, "Чувство вины"},
			{3, "Раздражительность"},
			{4, "Решительный"},
			{5, "Чувство силы"},
			{6, "Страдающий"},
			{7, "Испуганный"},
			{8, "Настороженный"},
			{9, "Внимательный"},
			{10, "Гордый"},
			{11, "Возбуждённый (радостно)"},
			{12, "Враждебный"},
			{13, "Стыдящийся"},
			{14, "Взволнованный"},
			{15, "Нервный"},
			{16, "Грустный"},
			{17, "Энтузиастичный"},
			{18, "Вдохновлённый"},
			{19, "Активный"},
			{20, "Напуганный"},
		},
		Options: map[int]string{
			1: "1 (Почти или совсем нет)",
			2: "2 (Немного)",
			3: "3 (Умеренно)",
			4: "4 (Значительно)",
			5: "5 (Очень сильно)",
		},
	})
}
