package survey

// PID-5-BF+M: modified brief form of the Personality Inventory for DSM-5,
// 36 statements rated 1-4. Raw answers are recoded to 0-3 by the scorer.
func init() {
	registerCatalog(&Catalog{
		Instrument: PID5BFM,
		Questions: []Question{
			{1, "Моё настроение часто и резко меняется."},
			{2, "Мне легко воспользоваться другими в своих интересах."},
			{3, "Я часто не выполняю взятые на себя обязательства."},
			{4, "Я предпочитаю держаться в стороне от людей."},
			{5, "У меня бывают убеждения, которые другие считают странными."},
			{6, "Я не успокаиваюсь, пока не сделаю всё идеально."},
			{7, "Я беспокоюсь почти обо всём."},
			{8, "Мне случается приукрашивать правду, если это выгодно."},
			{9, "Я действую под влиянием момента, не думая о последствиях."},
			{10, "Мне редко что-то приносит радость."},
			{11, "Люди считают моё поведение необычным."},
			{12, "Мне трудно менять способ действий, даже когда он не работает."},
			{13, "Я боюсь остаться один, без близкого человека."},
			{14, "Я заслуживаю особого отношения к себе."},
			{15, "Мне трудно сосредоточиться на задаче, я легко отвлекаюсь."},
			{16, "Я избегаю близких отношений."},
			{17, "Порой предметы вокруг кажутся мне нереальными."},
			{18, "Я требую от себя безупречности во всём."},
			{19, "Мои эмоции вспыхивают по малейшему поводу."},
			{20, "Я умею добиваться своего, управляя людьми."},
			{21, "На меня нельзя положиться в делах."},
			{22, "Мне не нужны другие люди, мне лучше одному."},
			{23, "Я верю в вещи, которые большинство считает невозможными."},
			{24, "Я придерживаюсь своих правил, даже когда это всем мешает."},
			{25, "Тревога сопровождает меня почти постоянно."},
			{26, "Я говорю неправду легко и без угрызений совести."},
			{27, "Я часто делаю рискованные вещи, не раздумывая."},
			{28, "Я почти не испытываю удовольствия от жизни."},
			{29, "Мои манеры и речь кажутся людям эксцентричными."},
			{30, "Порядок и организованность для меня важнее всего."},
			{31, "Разлука с близкими вызывает у меня панику."},
			{32, "Я значительнее и талантливее большинства людей."},
			{33, "Мои мысли постоянно разбегаются, мешая довести дело до конца."},
			{34, "Я держу людей на расстоянии, даже тех, кто мне симпатичен."},
			{35, "Иногда я ощущаю своё тело как чужое."},
			{36, "Я навожу порядок даже там, где это никому не нужно."},
		},
		Options: map[int]string{
			1: "1 (Совершенно неверно или часто неверно)",
			2: "2 (Иногда или отчасти неверно)",
			3: "3 (Иногда или отчасти верно)",
			4: "4 (Совершенно верно или часто верно)",
		},
	})
}
