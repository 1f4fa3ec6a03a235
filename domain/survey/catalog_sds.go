package survey

// SDS: self-determination scale, 12 forced-choice items. Each item opposes
// statement А to statement Б; the answer value expresses which side feels
// more true (1 = only А ... 5 = only Б). Which side is the autonomous one
// varies per item and lives in the scorer's table.
func init() {
	registerCatalog(&Catalog{
		Instrument: SDS,
		Questions: []Question{
			{1, "А: Я всегда чувствую, что сам выбираю то, что делаю. — Б: Иногда я чувствую, что делаю не то, что выбрал бы сам."},
			{2, "А: Мои эмоции часто кажутся мне чужими. — Б: Мои эмоции всегда принадлежат мне."},
			{3, "А: Я чувствую, что делаю то, что действительно хочу. — Б: Я часто делаю то, что «надо», а не то, что хочу."},
			{4, "А: Мне трудно понять, что я на самом деле чувствую. — Б: Я хорошо понимаю свои чувства."},
			{5, "А: То, чем я занимаюсь, выражает меня самого. — Б: То, чем я занимаюсь, мало связано с тем, какой я есть."},
			{6, "А: Я свободен делать то, что решил сам. — Б: Я часто делаю то, чего от меня ждут другие."},
			{7, "А: Обстоятельства определяют мои поступки. — Б: Я сам определяю свои поступки."},
			{8, "А: Мои решения отражают мои собственные желания. — Б: Мои решения часто продиктованы давлением извне."},
			{9, "А: Я делаю многое, не чувствуя, что это мой выбор. — Б: Всё, что я делаю, я выбираю сам."},
			{10, "А: Я нередко действую вопреки своим ценностям. — Б: Мои действия согласуются с моими ценностями."},
			{11, "А: В своих делах я следую собственным интересам. — Б: В своих делах я следую чужим ожиданиям."},
			{12, "А: Мне приходится заставлять себя делать повседневные дела. — Б: Повседневные дела я делаю с внутренним согласием."},
		},
		Options: map[int]string{
			1: "Только А",
			2: "Скорее А",
			3: "Оба варианта",
			4: "Скорее Б",
			5: "Только Б",
		},
	})
}
