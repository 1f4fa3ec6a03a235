package survey

// RFQ: Regulatory Focus Questionnaire, 11 items on a 1-5 agreement scale.
func init() {
	registerCatalog(&Catalog{
		Instrument: RFQ,
		Questions: []Question{
			{1, "Обычно я добиваюсь того, чего хочу."},
			{2, "Переходили ли вы в детстве границы дозволенного, делая то, что ваши родители вам запрещали?"},
			{3, "Как часто завершение какого-либо дела вдохновляло вас на дальнейшее продолжение работы в этом направлении?"},
			{4, "Как часто вы «играли на родительских нервах», когда были ребенком?"},
			{5, "Слушались ли вы ваших родителей?"},
			{6, "Как часто в детстве вы совершали поступки, которые ваши родители явно не одобряли?"},
			{7, "Как часто вы преуспеваете в ваших начинаниях?"},
			{8, "Я бываю неосторожен."},
			{9, "Как часто при решении важной для вас задачи вам кажется, что вы справляетесь хуже, чем хотели бы?"},
			{10, "Я чувствую, что двигаюсь к достижению успеха в своей жизни."},
			{11, "В моей жизни мало хобби и увлечений, отвечающих моим интересам, заниматься которыми мне действительно хочется."},
		},
		Options: map[int]string{
			1: "Совершенно не согласен",
			2: "Не согласен",
			3: "Нечто среднее",
			4: "Согласен",
			5: "Совершенно согласен",
		},
		ReverseItems: map[int]bool{2: true, 4: true, 6: true, 8: true, 9: true, 11: true},
	})
}
