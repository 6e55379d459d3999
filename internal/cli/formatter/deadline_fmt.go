package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mehil/internal/deadline"
	"github.com/alexanderramin/mehil/internal/domain"
)

const titleWidth = 40

// FormatResult renders a calculation as a titled box: the last day, the
// explanation notes and the inputs it was computed from.
func FormatResult(req deadline.Request, res deadline.Result) string {
	var b strings.Builder

	b.WriteString(Bold(deadline.FormatLong(res.FinalDueDate)))
	b.WriteString("\n")
	if res.JudicialRecessTriggered {
		b.WriteString(StyleYellow.Render("⚠ Adli tatil uzatması uygulandı"))
		b.WriteString("\n")
	}

	if notes := res.Notes(); len(notes) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleBlue.Render("Açıklamalar"))
		b.WriteString("\n")
		for _, n := range notes {
			b.WriteString(Dim("•") + " " + n + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Tebliğ Tarihi: %s   Süre: %s   Süre Türü: %s",
		deadline.FormatShort(req.ReferenceDate),
		deadline.FormatDuration(req.DurationValue, req.DurationUnit),
		recessLabel(req.ApplyJudicialRecessExtension),
	)))
	if !res.BaseDueDate.Equal(res.FinalDueDate) {
		b.WriteString("\n")
		b.WriteString(Dim("Uzatmasız son gün: " + deadline.FormatShort(res.BaseDueDate)))
	}

	return RenderBox("Hesaplanan Son Gün", b.String())
}

func recessLabel(apply bool) string {
	if apply {
		return "Adli tatile tabi"
	}
	return "Adli tatile tabi değil"
}

// FormatSavedDeadline renders the confirmation shown after an agenda save.
func FormatSavedDeadline(s *domain.SavedDeadline, today time.Time) string {
	return fmt.Sprintf("%s %s %s\n  %s  %s\n",
		StyleGreen.Render("✔"),
		Bold(s.Title),
		Dim("("+s.DisplayID()+")"),
		s.DateLabel,
		RelativeDaysStyled(s.DaysLeft(today)),
	)
}

// FormatAgenda renders saved deadlines as a table with remaining days and
// the share of each period already used.
func FormatAgenda(entries []*domain.SavedDeadline, today time.Time) string {
	if len(entries) == 0 {
		return Dim("Ajandada kayıtlı süre yok.") + "\n"
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Dim(e.DisplayID()),
			Truncate(e.Title, titleWidth),
			deadline.FormatShort(e.ReferenceDate),
			deadline.FormatDuration(e.DurationValue, e.DurationUnit),
			e.DateLabel + recessMarker(e.RecessTriggered),
			RelativeDaysStyled(e.DaysLeft(today)),
			RenderElapsed(ElapsedShare(e.ReferenceDate, e.DueDate, deadline.DateOf(today)), 10),
		})
	}

	return Header("Süre Ajandası") + "\n\n" +
		RenderTable([]string{"ID", "BAŞLIK", "TEBLİĞ", "SÜRE", "SON GÜN", "KALAN", "GEÇEN"}, rows)
}

func recessMarker(triggered bool) string {
	if triggered {
		return " " + StylePurple.Render("(AT)")
	}
	return ""
}

// FormatHolidays lists the calendar. With a non-zero year the holidays and
// recess window are shown as concrete dates of that year.
func FormatHolidays(cal deadline.Calendar, year int) string {
	var b strings.Builder

	title := "Resmi Tatiller"
	if year != 0 {
		title = fmt.Sprintf("%d Resmi Tatilleri", year)
	}
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(cal.Holidays))
	for _, h := range cal.Holidays {
		date := deadline.FormatMonthDay(h.MonthDay)
		if year != 0 {
			d := h.In(year)
			if d.Month() != h.Month {
				// 29 February outside a leap year
				continue
			}
			date = deadline.FormatLong(d)
		}
		rows = append(rows, []string{date, h.Name})
	}
	b.WriteString(RenderTable([]string{"TARİH", "TATİL"}, rows))
	b.WriteString("\n")

	w := cal.Recess
	if year == 0 {
		b.WriteString(fmt.Sprintf("%s %s – %s, süre sonu %s tarihine uzar.\n",
			StylePurple.Render("Adli tatil:"),
			deadline.FormatMonthDay(w.Start), deadline.FormatMonthDay(w.End), deadline.FormatMonthDay(w.Resume)))
	} else {
		start, end := w.Bounds(year)
		b.WriteString(fmt.Sprintf("%s %s – %s, süre sonu %s tarihine uzar.\n",
			StylePurple.Render("Adli tatil:"),
			deadline.FormatShort(start), deadline.FormatShort(end), deadline.FormatLong(w.Resumption(year))))
	}
	return b.String()
}
