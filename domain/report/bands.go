package report

// Band labels shared across instruments.
const (
	BandHigh   = "Высокий"
	BandMedium = "Средний"
	BandLow    = "Низкий"

	BandSDSHigh  = "Высокая самодетерминация (действую в согласии с собой)"
	BandSDSMixed = "Смешанная мотивация"
	BandSDSLow   = "Низкая самодетерминация (внешний контроль)"

	BandPIDBackground = "фоновый уровень"
	BandPIDMild       = "легкая выраженность"
	BandPIDClinical   = "клинически значимо"
	BandPIDHigh       = "высокая выраженность"
)

// HEXACOBand buckets a factor mean on the 1-5 scale.
func HEXACOBand(score float64) string {
	switch {
	case score >= 4.0:
		return BandHigh
	case score >= 3.0:
		return BandMedium
	default:
		return BandLow
	}
}

// SDSIndexBand buckets the overall self-determination index: <= -0.5 low,
// -0.4..0.4 mixed, everything else high. Indexes falling in the gaps
// between the cut-offs (0.4..0.5 and -0.5..-0.4) land in the high band.
func SDSIndexBand(index float64) string {
	switch {
	case index <= -0.5:
		return BandSDSLow
	case index >= -0.4 && index <= 0.4:
		return BandSDSMixed
	default:
		return BandSDSHigh
	}
}

// SDSSubscaleBand buckets a subscale mean at the +/-0.4 threshold.
func SDSSubscaleBand(score float64) string {
	switch {
	case score < -0.4:
		return BandLow
	case score > 0.4:
		return BandHigh
	default:
		return BandMedium
	}
}

// PID5Band buckets a domain mean on the recoded 0-3 scale.
func PID5Band(score float64) string {
	switch {
	case score < 0.5:
		return BandPIDBackground
	case score < 1.5:
		return BandPIDMild
	case score < 2.5:
		return BandPIDClinical
	default:
		return BandPIDHigh
	}
}

// hexacoDescriptions carries the fixed interpretation text per factor and band.
var hexacoDescriptions = map[string]map[string]string{
	"H": {
		BandHigh:   "Вы честны, искренни, скромны и справедливы. Избегаете манипуляций и коррупции.",
		BandMedium: "У вас умеренный уровень честности и смирения. Обычно поступаете справедливо.",
		BandLow:    "Вы можете быть склонны к манипуляциям, хвастовству или нечестному поведению.",
	},
	"E": {
		BandHigh:   "Вы эмоционально чувствительны, тревожны, нуждаетесь в эмоциональной поддержке.",
		BandMedium: "У вас умеренный уровень эмоциональности. Иногда тревожитесь, но в целом стабильны.",
		BandLow:    "Вы эмоционально стабильны, спокойны, независимы и стрессоустойчивы.",
	},
	"X": {
		BandHigh:   "Вы общительны, активны, энергичны, оптимистичны и любите быть в центре внимания.",
		BandMedium: "У вас умеренный уровень экстраверсии. Комфортно чувствуете себя в разных ситуациях.",
		BandLow:    "Вы интровертны, предпочитаете одиночество, спокойны и сдержанны.",
	},
	"A": {
		BandHigh:   "Вы терпеливы, миролюбивы, прощающи и готовы к сотрудничеству.",
		BandMedium: "У вас умеренный уровень доброжелательности. Обычно готовы к компромиссам.",
		BandLow:    "Вы можете быть критичными, упрямыми, склонными к конфликтам.",
	},
	"C": {
		BandHigh:   "Вы организованы, дисциплинированы, надежны и стремитесь к совершенству.",
		BandMedium: "У вас умеренный уровень добросовестности. Обычно выполняете обязательства.",
		BandLow:    "Вы можете быть неорганизованными, импульсивными, склонными к прокрастинации.",
	},
	"O": {
		BandHigh:   "Вы креативны, любознательны, интеллектуальны и открыты новому опыту.",
		BandMedium: "У вас умеренная открытость опыту. Интересуетесь некоторыми новыми идеями.",
		BandLow:    "Вы предпочитаете традиционные подходы, практичны и консервативны.",
	},
	"Alt": {
		BandHigh:   "Вы альтруистичны, сочувствующи и готовы помогать другим.",
		BandMedium: "У вас умеренный уровень альтруизма. Иногда помогаете другим.",
		BandLow:    "Вы больше сосредоточены на себе, менее склонны к альтруистическому поведению.",
	},
}

// sdsSubscaleTexts carries the fixed subscale interpretations.
var sdsSubscaleTexts = map[string]map[string]string{
	"self_contact": {
		BandLow:    "Низкий Self-Contact (человек «не слышит себя»)",
		BandMedium: "Нормальный Self-Contact (контакт с собой)",
		BandHigh:   "Высокий Self-Contact (хороший контакт с собой)",
	},
	"choiceful_action": {
		BandLow:    "Низкое Choiceful Action («слышу, но не делаю»)",
		BandMedium: "Нормальное Choiceful Action (действие по-своему)",
		BandHigh:   "Высокое Choiceful Action (активно действую по-своему)",
	},
}
