package survey

// Self-Efficacy test (Sherer et al. adaptation): 23 statements rated -5..+5.
// Items 1-17 form the general scale, 18-23 the social one. The flagged items
// are negatively worded; the scorer negates their sign.
func init() {
	registerCatalog(&Catalog{
		Instrument: SelfEfficacy,
		Questions: []Question{
			{1, "Когда я что-либо планирую, я всегда уверен, что могу выполнить данную работу."},
			{2, "Одна из моих проблем состоит в том, что я не могу сразу взяться за работу, которую мне необходимо выполнить."},
			{3, "Если я не могу выполнить работу с первого раза, я продолжаю попытки до тех пор, пока не справлюсь с ней."},
			{4, "Когда я ставлю важные для себя цели, мне редко удаётся достичь их."},
			{5, "Я часто бросаю дела, не закончив их."},
			{6, "Я стараюсь избегать трудностей."},
			{7, "Если что-то кажется мне слишком трудным, я не стану даже пытаться выполнить это хоть как-нибудь."},
			{8, "Если я делаю что-то крайне необходимое, но не слишком приятное для меня, я всё равно буду упорствовать до тех пор, пока не доведу дело до конца."},
			{9, "Если я решил что-то сделать, я буду идти напролом, до конца."},
			{10, "Если мне не удаётся быстро выучить что-то новое, я сразу бросаю это дело."},
			{11, "Когда проблемы возникают неожиданно, мне не удаётся справиться с ними."},
			{12, "Я не пытаюсь научиться чему-то новому, если оно выглядит слишком сложным для меня."},
			{13, "Неудачи не смущают меня, а только заставляют предпринимать ещё более настойчивые попытки справиться с ситуацией."},
			{14, "Я испытываю уверенность в своих силах при решении сложных проблем."},
			{15, "Я вполне уверен в себе."},
			{16, "Я легко бросаю дела."},
			{17, "Я не похож на человека, который легко справляется с любыми проблемами в жизни."},
			{18, "Мне трудно приобретать новых друзей."},
			{19, "Если я встретил человека, с которым мне было бы приятно поговорить, я иду к нему сам, не дожидаясь, пока он подойдёт ко мне."},
			{20, "Если мне не удаётся стать близким другом интересного для меня человека, я, скорее всего, прекращу попытки сблизиться с ним."},
			{21, "Если я познакомился с человеком, который на первый взгляд кажется мне не слишком интересным, я всё равно не прекращаю сразу общения с ним."},
			{22, "Я не слишком уютно чувствую себя на собраниях, в компаниях, в больших группах людей."},
			{23, "Я приобрёл всех моих друзей благодаря своей способности устанавливать контакты."},
		},
		Options: map[int]string{
			-5: "-5 (Абсолютно не согласен)",
			-4: "-4",
			-3: "-3",
			-2: "-2",
			-1: "-1",
			0:  "0 (Нечто среднее)",
			1:  "+1",
			2:  "+2",
			3:  "+3",
			4:  "+4",
			5:  "+5 (Полностью согласен)",
		},
		ReverseItems: map[int]bool{
			2: true, 4: true, 5: true, 6: true, 7: true, 10: true, 11: true,
			12: true, 16: true, 17: true, 18: true, 20: true, 22: true,
		},
	})
}
