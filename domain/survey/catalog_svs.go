package survey

// SVS: Schwartz Value Survey, 57 values rated -1..7 as guiding principles
// of the respondent's life. Items 1-30 are terminal values, 31-57
// instrumental.
func init() {
	registerCatalog(&Catalog{
		Instrument: SVS,
		Questions: []Question{
			{1, "РАВЕНСТВО (равные возможности для всех)"},
			{2, "ВНУТРЕННЯЯ ГАРМОНИЯ (быть в мире с самим собой)"},
			{3, "СОЦИАЛЬНАЯ СИЛА (контроль над другими, доминирование)"},
			{4, "УДОВОЛЬСТВИЕ (удовлетворение желаний)"},
			{5, "СВОБОДА (свобода мыслей и действий)"},
			{6, "ДУХОВНАЯ ЖИЗНЬ (акцент на духовных, а не материальных вопросах)"},
			{7, "ЧУВСТВО ПРИНАДЛЕЖНОСТИ (ощущение, что другие заботятся обо мне)"},
			{8, "СОЦИАЛЬНЫЙ ПОРЯДОК (стабильность общества)"},
			{9, "ЖИЗНЬ, ПОЛНАЯ ВПЕЧАТЛЕНИЙ (стремление к новизне)"},
			{10, "СМЫСЛ ЖИЗНИ (цели в жизни)"},
			{11, "ВЕЖЛИВОСТЬ (предупредительность, хорошие манеры)"},
			{12, "БОГАТСТВО (материальная собственность, деньги)"},
			{13, "НАЦИОНАЛЬНАЯ БЕЗОПАСНОСТЬ (защищённость своей нации от врагов)"},
			{14, "САМОУВАЖЕНИЕ (вера в собственную ценность)"},
			{15, "ВЗАИМНОСТЬ УСЛУГ (избегание долгов перед другими)"},
			{16, "ТВОРЧЕСТВО (уникальность, богатое воображение)"},
			{17, "МИР ВО ВСЁМ МИРЕ (свобода от войн и конфликтов)"},
			{18, "УВАЖЕНИЕ ТРАДИЦИЙ (сохранение признанных временем обычаев)"},
			{19, "ЗРЕЛАЯ ЛЮБОВЬ (глубокая эмоциональная и духовная близость)"},
			{20, "САМОДИСЦИПЛИНА (самоограничение, устойчивость к соблазнам)"},
			{21, "ПРАВО НА УЕДИНЕНИЕ (право на личное пространство)"},
			{22, "БЕЗОПАСНОСТЬ СЕМЬИ (безопасность для близких)"},
			{23, "СОЦИАЛЬНОЕ ПРИЗНАНИЕ (одобрение, уважение других)"},
			{24, "ЕДИНСТВО С ПРИРОДОЙ (слияние с природой)"},
			{25, "РАЗНООБРАЗНАЯ ЖИЗНЬ (наполненная вызовами, новизной и переменами)"},
			{26, "МУДРОСТЬ (зрелое понимание жизни)"},
			{27, "АВТОРИТЕТ (право быть лидером или отдавать распоряжения)"},
			{28, "ИСТИННАЯ ДРУЖБА (близкие друзья, готовые поддержать)"},
			{29, "МИР КРАСОТЫ (красота природы и искусства)"},
			{30, "СОЦИАЛЬНАЯ СПРАВЕДЛИВОСТЬ (исправление несправедливости, забота о слабых)"},
			{31, "САМОСТОЯТЕЛЬНЫЙ (надеющийся на себя, самодостаточный)"},
			{32, "УМЕРЕННЫЙ (избегающий крайностей в чувствах и действиях)"},
			{33, "ВЕРНЫЙ (преданный друзьям, группе)"},
			{34, "ЦЕЛЕУСТРЕМЛЁННЫЙ (трудолюбивый, с высокими притязаниями)"},
			{35, "ШИРОКО МЫСЛЯЩИЙ (терпимый к различным идеям и убеждениям)"},
			{36, "СКРОМНЫЙ (простой, не стремящийся привлечь внимание)"},
			{37, "СМЕЛЫЙ (ищущий приключений, риска)"},
			{38, "ЗАЩИЩАЮЩИЙ ОКРУЖАЮЩУЮ СРЕДУ (сохраняющий природу)"},
			{39, "ВЛИЯТЕЛЬНЫЙ (имеющий влияние на людей и события)"},
			{40, "ПОЧИТАЮЩИЙ РОДИТЕЛЕЙ И СТАРШИХ (проявляющий уважение)"},
			{41, "ВЫБИРАЮЩИЙ СОБСТВЕННЫЕ ЦЕЛИ (определяющий свои намерения сам)"},
			{42, "ЗДОРОВЫЙ (не больной физически или душевно)"},
			{43, "СПОСОБНЫЙ (компетентный, действующий эффективно)"},
			{44, "ПРИНИМАЮЩИЙ СВОЮ УЧАСТЬ (покорный жизненным обстоятельствам)"},
			{45, "ЧЕСТНЫЙ (искренний, правдивый)"},
			{46, "СОХРАНЯЮЩИЙ СВОЙ ИМИДЖ (защита собственного «лица»)"},
			{47, "ПОСЛУШНЫЙ (исполнительный, подчиняющийся правилам)"},
			{48, "УМНЫЙ (логично мыслящий)"},
			{49, "ПОЛЕЗНЫЙ (работающий на благо других)"},
			{50, "НАСЛАЖДАЮЩИЙСЯ ЖИЗНЬЮ (наслаждение едой, отдыхом, развлечениями)"},
			{51, "БЛАГОЧЕСТИВЫЙ (придерживающийся религиозной веры и убеждений)"},
			{52, "ОТВЕТСТВЕННЫЙ (надёжный, заслуживающий доверия)"},
			{53, "ЛЮБОЗНАТЕЛЬНЫЙ (интересующийся всем, пытливый)"},
			{54, "СКЛОННЫЙ ПРОЩАТЬ (стремящийся прощать другим)"},
			{55, "УСПЕШНЫЙ (достигающий целей)"},
			{56, "ЧИСТОПЛОТНЫЙ (опрятный, аккуратный)"},
			{57, "ПОТВОРСТВУЮЩИЙ СВОИМ ЖЕЛАНИЯМ (занимающийся тем, что доставляет удовольствие)"},
		},
		Options: map[int]string{
			-1: "-1 (Противоречит моим ценностям)",
			0:  "0 (Совершенно не важно)",
			1:  "1",
			2:  "2",
			3:  "3 (Важно)",
			4:  "4",
			5:  "5",
			6:  "6 (Очень важно)",
			7:  "7 (Высшая значимость)",
		},
	})
}
