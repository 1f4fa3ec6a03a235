package survey

// HEXACO-100: six 16-item factors laid out on an interleaved lattice
// (Openness on 1,7,13..., Conscientiousness on 2,8,14... and so on) plus the
// interstitial 4-item Altruism facet at 97-100. Rated 1-5.
func init() {
	registerCatalog(&Catalog{
		Instrument: HEXACO,
		Questions: []Question{
			{1, "Мне было бы скучно в художественной галерее."},
			{2, "Я заранее планирую свои дела и придерживаюсь плана."},
			{3, "Я редко держу обиду на людей."},
			{4, "Я чувствую себя уверенно в больших компаниях."},
			{5, "Я сильно переживаю даже из-за небольших неприятностей."},
			{6, "Я мог бы польстить человеку, чтобы получить повышение."},
			{7, "Меня интересует история и политика других стран."},
			{8, "Я часто откладываю дела на последний момент."},
			{9, "Я быстро выхожу из себя, когда со мной не соглашаются."},
			{10, "Мне трудно начать разговор с незнакомым человеком."},
			{11, "Я редко испытываю страх."},
			{12, "Я не взял бы чужого, даже зная, что это останется незамеченным."},
			{13, "Я получаю удовольствие, рассматривая произведения искусства."},
			{14, "Моё рабочее место всегда в порядке."},
			{15, "Я склонен идти на компромиссы."},
			{16, "Я полон энергии и оптимизма."},
			{17, "В трудные минуты мне необходима поддержка близких."},
			{18, "Большие деньги для меня не главное в жизни."},
			{19, "Научные открытия вызывают у меня живой интерес."},
			{20, "Я принимаю решения, тщательно всё обдумав."},
			{21, "Люди считают меня вспыльчивым."},
			{22, "Я предпочитаю проводить время в одиночестве."},
			{23, "Я могу расплакаться при просмотре трогательного фильма."},
			{24, "Я считаю себя обычным человеком, не лучше других."},
			{25, "Я избегаю читать сложные книги."},
			{26, "Я довожу начатое до конца, даже если это трудно."},
			{27, "Я легко прощаю тех, кто причинил мне вред."},
			{28, "Мне нравится быть в центре внимания."},
			{29, "Я сохраняю хладнокровие в опасных ситуациях."},
			{30, "Ради выгоды я готов немного приукрасить факты."},
			{31, "Мне нравится размышлять над необычными идеями."},
			{32, "Мне трудно заставить себя работать без настроения."},
			{33, "Я часто критикую других."},
			{34, "В группе людей я обычно молчу."},
			{35, "Я беспокоюсь о близких, когда их долго нет."},
			{36, "Я никогда не дам взятку, даже если это решит мою проблему."},
			{37, "Я редко задумываюсь о причинах явлений."},
			{38, "Я проверяю свою работу на ошибки по несколько раз."},
			{39, "В споре я стараюсь понять точку зрения оппонента."},
			{40, "Я легко завожу новых друзей."},
			{41, "Физическая боль пугает меня больше, чем других."},
			{42, "Дорогие вещи и роскошь мало меня привлекают."},
			{43, "Мне нравятся люди с нестандартными взглядами."},
			{44, "Я нередко действую импульсивно, о чём потом жалею."},
			{45, "Мне трудно сдерживать раздражение."},
			{46, "Публичные выступления даются мне без труда."},
			{47, "Я справляюсь с трудностями без чужой помощи."},
			{48, "Мне неловко, когда меня хвалят сверх меры."},
			{49, "Поэзия кажется мне пустой тратой времени."},
			{50, "Люди считают меня человеком, на которого можно положиться."},
			{51, "Я мягок в оценках других людей."},
			{52, "Я чувствую себя неловко на шумных вечеринках."},
			{53, "Перед важными событиями я не могу уснуть от волнения."},
			{54, "Я умею втираться в доверие, когда мне что-то нужно."},
			{55, "Мне трудно понять людей с радикальными идеями."},
			{56, "В моих вещах обычно беспорядок."},
			{57, "Я упрям и редко уступаю."},
			{58, "Моё настроение обычно приподнятое."},
			{59, "Меня трудно вывести из равновесия."},
			{60, "Я честен в мелочах так же, как и в крупном."},
			{61, "Я люблю узнавать новое просто ради самого знания."},
			{62, "Я ставлю перед собой высокие требования."},
			{63, "Я спокойно отношусь к недостаткам окружающих."},
			{64, "Я избегаю ситуаций, где нужно много общаться."},
			{65, "Мне нужно делиться своими переживаниями с кем-то."},
			{66, "Иногда мне хочется, чтобы окружающие знали о моём высоком положении."},
			{67, "Творческие занятия — важная часть моей жизни."},
			{68, "Я могу работать небрежно, если задача мне неинтересна."},
			{69, "Когда меня задевают, я отвечаю резко."},
			{70, "Люди описывают меня как живого и общительного."},
			{71, "Я избегаю рискованных занятий."},
			{72, "Я заслуживаю большего уважения, чем обычные люди."},
			{73, "Я предпочитаю привычное новому."},
			{74, "Я всегда выполняю обещания в срок."},
			{75, "Со мной легко договориться."},
			{76, "Мне сложно проявлять инициативу в общении."},
			{77, "Я почти никогда не тревожусь о будущем."},
			{78, "Соблазн использовать чужую доверчивость мне чужд."},
			{79, "Необычные люди вызывают у меня интерес, а не настороженность."},
			{80, "Мелкие детали кажутся мне не стоящими внимания."},
			{81, "Я долго помню нанесённые мне обиды."},
			{82, "Я с удовольствием участвую в общих мероприятиях."},
			{83, "Расставание с близкими даётся мне очень тяжело."},
			{84, "Мне нравится хвастаться своими успехами."},
			{85, "Мне безразлична красота природы."},
			{86, "Дисциплина даётся мне легко."},
			{87, "Я терпелив с людьми, даже когда они ошибаются."},
			{88, "Я считаю себя менее популярным, чем большинство людей."},
			{89, "Неожиданные происшествия легко выбивают меня из колеи."},
			{90, "Статусные символы — пустое для меня."},
			{91, "У меня богатое воображение."},
			{92, "Я часто принимаю решения наспех."},
			{93, "Люди говорят, что я слишком требователен к другим."},
			{94, "В новой компании я быстро осваиваюсь."},
			{95, "Слёзы — редкость для меня даже в горе."},
			{96, "Если наказание исключено, правила можно и нарушить."},
			{97, "Я стараюсь помогать тем, кто оказался в беде."},
			{98, "Чужие проблемы оставляют меня равнодушным."},
			{99, "Я готов делиться своим временем и ресурсами с нуждающимися."},
			{100, "Жёсткость по отношению к слабым иногда оправдана."},
		},
		Options: map[int]string{
			1: "1 (Совершенно не согласен)",
			2: "2 (Не согласен)",
			3: "3 (Нейтрально)",
			4: "4 (Согласен)",
			5: "5 (Совершенно согласен)",
		},
		ReverseItems: map[int]bool{
			1: true, 6: true, 8: true, 9: true, 10: true, 21: true, 22: true,
			25: true, 29: true, 30: true, 32: true, 33: true, 34: true,
			37: true, 44: true, 45: true, 47: true, 49: true, 52: true,
			54: true, 55: true, 56: true, 57: true, 59: true, 64: true,
			66: true, 68: true, 69: true, 72: true, 73: true, 76: true,
			77: true, 80: true, 81: true, 84: true, 85: true, 88: true,
			92: true, 93: true, 95: true, 96: true, 98: true, 100: true,
			11: true,
		},
	})
}
