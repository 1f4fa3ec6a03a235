package survey

// CD-RISC: Connor-Davidson Resilience Scale, 25 items rated 1-5.
func init() {
	registerCatalog(&Catalog{
		Instrument: CDRISC,
		Questions: []Question{
			{1, "Я способен адаптироваться к происходящим изменениям."},
			{2, "У меня близкие и надежные отношения с другими."},
			{3, "Иногда мне помогает судьба или Бог."},
			{4, "Я могу справиться со всем, что мне встречается на пути."},
			{5, "Прошлые успехи придают мне уверенность."},
			{6, "Я пытаюсь увидеть смешную сторону вещей, когда сталкиваюсь с проблемами."},
			{7, "То, что я справляюсь со стрессом, может сделать меня сильнее."},
			{8, "Я обычно восстанавливаюсь после болезней, ран или других лишений."},
			{9, "Я считаю, что большинство событий происходит не без причины."},
			{10, "Я стараюсь приложить все усилия, вне зависимости от ситуации."},
			{11, "Я верю, что могу достичь своих целей, несмотря на препятствия."},
			{12, "Я не сдаюсь даже в безнадежных ситуациях."},
			{13, "Во времена стресса я знаю, где найти помощь."},
			{14, "Под давлением я сохраняю концентрацию и четкость мыслей."},
			{15, "Я предпочитаю руководить при решении проблем."},
			{16, "Меня не просто лишить воли неудачами."},
			{17, "Я рассматриваю себя, как сильную личность, способную справиться с вызовами и сложностями жизни."},
			{18, "Я принимаю непопулярные или сложные решения."},
			{19, "Я могу справиться с такими неприятными или болезненными ощущениями, как печаль, страх и гнев."},
			{20, "Я должен действовать интуитивно."},
			{21, "У меня сильное чувство цели в жизни."},
			{22, "Я чувствую, что контролирую ситуацию."},
			{23, "Мне нравятся вызовы."},
			{24, "Я работаю для достижения целей."},
			{25, "Я горжусь своими достижениями."},
		},
		Options: map[int]string{
			1: "1 – Никогда",
			2: "2 – Изредка",
			3: "3 – Иногда",
			4: "4 – Часто",
			5: "5 – Почти всегда",
		},
	})
}
