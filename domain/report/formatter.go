// Package report turns scored results into band labels and human-readable
// summaries. It is table-driven: no arithmetic beyond banding lookups on
// scores already computed by the scorers.
package report

import (
	"fmt"
	"sort"
	"strings"

	"psychoscore/domain/scoring"
	"psychoscore/domain/survey"
)

// ScaleInterpretation is one banded scale with its fixed interpretation text.
type ScaleInterpretation struct {
	Scale string  `json:"scale"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
	Band  string  `json:"band,omitempty"`
	Text  string  `json:"text,omitempty"`
}

// Interpret maps a scored result onto its interpretation table.
func Interpret(result scoring.Result) []ScaleInterpretation {
	switch r := result.(type) {
	case *scoring.HEXACOResult:
		return interpretHEXACO(r)
	case *scoring.SDSResult:
		return interpretSDS(r)
	case *scoring.SVSResult:
		return interpretSVS(r)
	case *scoring.PANASResult:
		return []ScaleInterpretation{
			{Scale: "positive_affect", Label: "Позитивный аффект (ПА)", Score: float64(r.PositiveAffect), Text: "Диапазон: 9 – 45"},
			{Scale: "negative_affect", Label: "Негативный аффект (НА)", Score: float64(r.NegativeAffect), Text: "Диапазон: 10 – 50"},
		}
	case *scoring.SelfEfficacyResult:
		return []ScaleInterpretation{
			{Scale: "general_self_efficacy", Label: "Общая самоэффективность (ОСЭ)", Score: float64(r.General), Text: "Диапазон: -85 до +85"},
			{Scale: "social_self_efficacy", Label: "Социальная самоэффективность (ССЭ)", Score: float64(r.Social), Text: "Диапазон: -30 до +30"},
		}
	case *scoring.CDRISCResult:
		return interpretCDRISC(r)
	case *scoring.RFQResult:
		return []ScaleInterpretation{
			{Scale: "promotion_score", Label: "Фокус продвижения", Score: float64(r.Promotion), Text: "Диапазон: 6 – 30"},
			{Scale: "prevention_score", Label: "Фокус профилактики", Score: float64(r.Prevention), Text: "Диапазон: 5 – 25"},
		}
	case *scoring.PID5BFMResult:
		return interpretPID5BFM(r)
	default:
		return nil
	}
}

func interpretHEXACO(r *scoring.HEXACOResult) []ScaleInterpretation {
	out := make([]ScaleInterpretation, 0, len(scoring.HEXACOFactorOrder))
	for _, factor := range scoring.HEXACOFactorOrder {
		score := r.Factors[factor]
		band := HEXACOBand(score)
		out = append(out, ScaleInterpretation{
			Scale: factor,
			Label: scoring.HEXACOFactorNames[factor],
			Score: score,
			Band:  band,
			Text:  hexacoDescriptions[factor][band],
		})
	}
	return out
}

func interpretSDS(r *scoring.SDSResult) []ScaleInterpretation {
	scBand := SDSSubscaleBand(r.SelfContact)
	caBand := SDSSubscaleBand(r.ChoicefulAction)
	return []ScaleInterpretation{
		{Scale: "sds_index", Label: "Общий индекс самодетерминации", Score: r.Index, Band: SDSIndexBand(r.Index), Text: SDSIndexBand(r.Index)},
		{Scale: "self_contact", Label: "Контакт с собой", Score: r.SelfContact, Band: scBand, Text: sdsSubscaleTexts["self_contact"][scBand]},
		{Scale: "choiceful_action", Label: "Осмысленное действие", Score: r.ChoicefulAction, Band: caBand, Text: sdsSubscaleTexts["choiceful_action"][caBand]},
	}
}

func interpretSVS(r *scoring.SVSResult) []ScaleInterpretation {
	out := make([]ScaleInterpretation, 0, len(r.Ranked)+len(r.Clusters))
	for _, vt := range r.Ranked {
		out = append(out, ScaleInterpretation{Scale: vt.Name, Label: vt.Name, Score: vt.Score})
	}
	clusters := make([]string, 0, len(r.Clusters))
	for name := range r.Clusters {
		clusters = append(clusters, name)
	}
	sort.Strings(clusters)
	for _, name := range clusters {
		out = append(out, ScaleInterpretation{Scale: name, Label: name, Score: r.Clusters[name]})
	}
	return out
}

func interpretCDRISC(r *scoring.CDRISCResult) []ScaleInterpretation {
	out := []ScaleInterpretation{
		{Scale: "total_score", Label: "Суммарный балл", Score: float64(r.Total)},
		{Scale: "classic_score", Label: "Классический балл (сумма − 25)", Score: float64(r.Classic), Band: r.Band, Text: r.Band},
	}
	names := make([]string, 0, len(r.Subscales))
	for name := range r.Subscales {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out = append(out, ScaleInterpretation{Scale: name, Label: name, Score: float64(r.Subscales[name])})
	}
	return out
}

func interpretPID5BFM(r *scoring.PID5BFMResult) []ScaleInterpretation {
	out := make([]ScaleInterpretation, 0, len(scoring.PID5BFMDomainOrder))
	for _, domain := range scoring.PID5BFMDomainOrder {
		score := r.Domains[domain]
		band := PID5Band(score)
		out = append(out, ScaleInterpretation{
			Scale: domain,
			Label: domain,
			Score: score,
			Band:  band,
			Text:  band,
		})
	}
	return out
}

// FormatMessage renders one scored result as a markdown message for the
// delivery layer, mirroring the per-instrument report texts.
func FormatMessage(result scoring.Result, userName string) string {
	var b strings.Builder
	switch r := result.(type) {
	case *scoring.HEXACOResult:
		fmt.Fprintf(&b, "🎯 Результаты HEXACO теста для %s\n\n", userName)
		for _, si := range interpretHEXACO(r) {
			fmt.Fprintf(&b, "**%s**: %.2f/5.0 (%s)\n   %s\n\n", si.Label, si.Score, si.Band, si.Text)
		}
		b.WriteString("📊 Интерпретация:\n")
		b.WriteString("• Высокий (4.0+): Ярко выраженная черта\n")
		b.WriteString("• Средний (3.0-3.9): Умеренная выраженность\n")
		b.WriteString("• Низкий (<3.0): Слабо выраженная черта\n")
	case *scoring.SDSResult:
		fmt.Fprintf(&b, "📊 **Результаты Теста Самодетерминации (SDS) для %s**\n\n", userName)
		fmt.Fprintf(&b, "🔹 **Общий Индекс Самодетерминации (SDS Index): %.2f**\n   *Интерпретация:* %s\n\n", r.Index, SDSIndexBand(r.Index))
		scBand := SDSSubscaleBand(r.SelfContact)
		caBand := SDSSubscaleBand(r.ChoicefulAction)
		fmt.Fprintf(&b, "🔸 **Подшкала 'Контакт с собой' (Self-Contact): %.2f**\n   *Интерпретация:* %s\n\n", r.SelfContact, sdsSubscaleTexts["self_contact"][scBand])
		fmt.Fprintf(&b, "🔸 **Подшкала 'Осмысленное действие' (Choiceful Action): %.2f**\n   *Интерпретация:* %s\n", r.ChoicefulAction, sdsSubscaleTexts["choiceful_action"][caBand])
	case *scoring.SVSResult:
		fmt.Fprintf(&b, "🧭 **Результаты Опросника ценностей Шварца (SVS) для %s**\n\n", userName)
		fmt.Fprintf(&b, "Средний сырой балл: %.2f\n\n**Ценностные типы (ипсатизированные средние, по убыванию):**\n", r.MeanRaw)
		for _, vt := range r.Ranked {
			fmt.Fprintf(&b, "• %s: %.2f\n", vt.Name, vt.Score)
		}
		b.WriteString("\n**Ценностные оси:**\n")
		clusters := make([]string, 0, len(r.Clusters))
		for name := range r.Clusters {
			clusters = append(clusters, name)
		}
		sort.Strings(clusters)
		for _, name := range clusters {
			fmt.Fprintf(&b, "• %s: %.2f\n", name, r.Clusters[name])
		}
		if len(r.Ranked) > 0 {
			fmt.Fprintf(&b, "\nНаиболее значимая ценность: %s. Наименее значимая: %s.\n",
				r.Ranked[0].Name, r.Ranked[len(r.Ranked)-1].Name)
		}
	case *scoring.PANASResult:
		fmt.Fprintf(&b, "👤 **Результаты Шкалы позитивного и негативного аффекта (ШПАНА) для %s**\n\n", userName)
		fmt.Fprintf(&b, "• **Позитивный аффект (ПА):** %d баллов (Диапазон: 9 - 45)\n", r.PositiveAffect)
		fmt.Fprintf(&b, "• **Негативный аффект (НА):** %d баллов (Диапазон: 10 - 50)\n\n", r.NegativeAffect)
		b.WriteString("*Примечание: Шкалы ПА и НА относительно независимы. Человек может иметь высокие или низкие показатели по обеим шкалам одновременно.*\n")
	case *scoring.SelfEfficacyResult:
		fmt.Fprintf(&b, "👤 **Результаты Теста самоэффективности для %s**\n\n", escapeMarkdown(userName))
		fmt.Fprintf(&b, "• **Общая самоэффективность (ОСЭ):** %d баллов (Диапазон: -85 до +85)\n", r.General)
		fmt.Fprintf(&b, "• **Социальная самоэффективность (ССЭ):** %d баллов (Диапазон: -30 до +30)\n", r.Social)
	case *scoring.CDRISCResult:
		fmt.Fprintf(&b, "🛡 **Результаты Шкалы устойчивости Коннора-Дэвидсона (CD-RISC) для %s**\n\n", userName)
		fmt.Fprintf(&b, "• Суммарный балл: %d (отвечено вопросов: %d/25)\n", r.Total, r.Answered)
		fmt.Fprintf(&b, "• Классический балл: %d\n• Категория: **%s**\n\n**Подшкалы:**\n", r.Classic, r.Band)
		names := make([]string, 0, len(r.Subscales))
		for name := range r.Subscales {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "• %s: %d\n", name, r.Subscales[name])
		}
	case *scoring.RFQResult:
		fmt.Fprintf(&b, "🎯 **Результаты Опросника регуляторного фокуса (RFQ) для %s**\n\n", userName)
		fmt.Fprintf(&b, "• **Фокус продвижения:** %d баллов\n", r.Promotion)
		fmt.Fprintf(&b, "• **Фокус профилактики:** %d баллов\n", r.Prevention)
	case *scoring.PID5BFMResult:
		fmt.Fprintf(&b, "👤 **Результаты теста PID-5-BF+M для %s**\n\n🎯 **Доменные шкалы (0-3):**\n", userName)
		for _, si := range interpretPID5BFM(r) {
			fmt.Fprintf(&b, "• %s: %.1f (%s)\n", si.Label, si.Score, si.Band)
		}
		fmt.Fprintf(&b, "\n📊 Суммарный балл: %d\n📝 Отвечено вопросов: %d/36\n\n", r.Total, r.Answered)
		b.WriteString("📋 **Интерпретация уровней:**\n")
		b.WriteString("• 0-0.4: фоновый уровень\n• 0.5-1.4: легкая выраженность\n• 1.5-2.4: клинически значимо\n• 2.5-3.0: высокая выраженность\n")
	}
	return b.String()
}

// BuildProfileMarkdown assembles a single markdown document out of all of a
// user's scored instruments, in the canonical instrument order.
func BuildProfileMarkdown(userName string, results []scoring.Result) string {
	byInstrument := make(map[survey.Instrument]scoring.Result, len(results))
	for _, r := range results {
		byInstrument[r.Instrument()] = r
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Психологический профиль: %s\n\n", userName)
	for _, inst := range survey.All() {
		result, ok := byInstrument[inst]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n", strings.ToUpper(inst.String()), FormatMessage(result, userName))
	}
	return b.String()
}

// escapeMarkdown protects user-supplied names in markdown output.
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[", "]", "\\]",
	)
	return replacer.Replace(s)
}
