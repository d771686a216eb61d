package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EgemenErin/Muscledia/internal/engine"
)

type boardModel struct {
	ctx context.Context
	b   Board

	width  int
	height int

	character engine.Character
	league    engine.LeagueSnapshot
	raid      engine.RaidState
	routines  []engine.Routine

	// Quest completion is session-scoped; the catalog itself is static.
	questsDone map[string]bool
	selected   int

	lastLog string
}

type refreshedMsg struct{}

type questDoneMsg struct {
	quest engine.Quest
	award engine.AwardResult
}

type setDoneMsg struct {
	res engine.CompleteSetResult
	err error
}

func newBoardModel(ctx context.Context, b Board) boardModel {
	m := boardModel{
		ctx:        ctx,
		b:          b,
		questsDone: map[string]bool{},
		lastLog:    "Loaded.",
	}
	m.refresh()
	return m
}

func (m *boardModel) refresh() {
	m.character = m.b.Progression.Character()
	m.league = m.b.League.Snapshot()
	m.raid = m.b.Raid.State()
	m.routines = m.b.Routines.List()
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) questDoneCmd(q engine.Quest) tea.Cmd {
	return func() tea.Msg {
		award := m.b.Progression.CompleteQuest(m.ctx, q.ID, q.XP)
		m.b.League.AddPoints(m.ctx, engine.LeaguePointsForQuest(q))
		return questDoneMsg{quest: q, award: award}
	}
}

func (m boardModel) setDoneCmd(routineID string, exercise, set int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.b.Routines.CompleteSet(m.ctx, routineID, exercise, set)
		return setDoneMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case questDoneMsg:
		m.questsDone[msg.quest.ID] = true
		m.refresh()
		m.lastLog = fmt.Sprintf("%s done: +%d XP", msg.quest.Title, msg.award.XPAwarded)
		if msg.award.LevelUp {
			m.lastLog += fmt.Sprintf(" — LEVEL UP %d → %d", msg.award.LevelBefore, msg.award.LevelAfter)
		}
		return m, nil
	case setDoneMsg:
		if msg.err != nil {
			m.lastLog = "Set failed: " + msg.err.Error()
			return m, nil
		}
		m.refresh()
		if msg.res.AlreadyDone {
			m.lastLog = "Set already completed."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s set logged: +%d XP, +1 raid set", msg.res.Exercise.Name, msg.res.Award.XPAwarded)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.refresh()
			m.lastLog = fmt.Sprintf("Refreshed at %s.", m.b.Clock.Now().Format("15:04:05"))
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			lines := m.boardLines()
			if m.selected < len(lines)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			lines := m.boardLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			switch line.kind {
			case lineQuest:
				if m.questsDone[line.quest.ID] {
					m.lastLog = "Already done this session."
					return m, nil
				}
				m.lastLog = "Completing " + line.quest.Title + "…"
				return m, m.questDoneCmd(line.quest)
			case lineSet:
				return m, m.setDoneCmd(line.routineID, line.exercise, line.set)
			default:
				m.lastLog = "Select a quest or a set to complete."
				return m, nil
			}
		}
	}
	return m, nil
}

type lineKind int

const (
	lineHeading lineKind = iota
	lineQuest
	lineRoutine
	lineSet
)

type boardLine struct {
	kind lineKind
	text string

	quest     engine.Quest
	routineID string
	exercise  int
	set       int
}

func (m *boardModel) boardLines() []boardLine {
	var out []boardLine

	section := func(title string, quests []engine.Quest) {
		out = append(out, boardLine{kind: lineHeading, text: title})
		for _, q := range quests {
			mark := "[ ]"
			if m.questsDone[q.ID] {
				mark = "[x]"
			}
			out = append(out, boardLine{
				kind:  lineQuest,
				quest: q,
				text:  fmt.Sprintf("%s %s (xp=%d, pts=%d)", mark, q.Title, q.XP, engine.LeaguePointsForQuest(q)),
			})
		}
	}
	section("Daily Quests", engine.DailyQuests)
	section("Weekly Quests", engine.WeeklyQuests)
	section("Special Quests", engine.SpecialQuests)

	out = append(out, boardLine{kind: lineHeading, text: "Routines"})
	if len(m.routines) == 0 {
		out = append(out, boardLine{kind: lineHeading, text: "(none)"})
	}
	for _, r := range m.routines {
		out = append(out, boardLine{kind: lineRoutine, routineID: r.ID, text: r.Name})
		for ei, ex := range r.Exercises {
			for si, s := range ex.Sets {
				mark := "[ ]"
				if s.Completed {
					mark = "[x]"
				}
				out = append(out, boardLine{
					kind:      lineSet,
					routineID: r.ID,
					exercise:  ei,
					set:       si,
					text:      fmt.Sprintf("  %s %s set %d (%d reps @ %.1fkg)", mark, ex.Name, si+1, s.Reps, s.Weight),
				})
			}
		}
	}

	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	c := m.character
	bar := progressBar(c.XP, c.XPToNext, 30)
	return fmt.Sprintf("Muscledia | %s | Level %d | XP %d/%d %s", c.Name, c.Level, c.XP, c.XPToNext, bar)
}

func (m boardModel) renderSidebar() string {
	c := m.character
	lines := []string{"Vitals"}
	lines = append(lines, fmt.Sprintf("- HP %d/%d %s", c.CurrentHealth, c.MaxHealth, progressBar(c.CurrentHealth, c.MaxHealth, 14)))
	lines = append(lines, fmt.Sprintf("- Streak %d days", c.Streak))
	lines = append(lines, fmt.Sprintf("- Quests done %d", c.QuestsCompleted))
	lines = append(lines, "")
	lines = append(lines, "League "+m.league.State.MonthKey)
	if m.league.HasNext {
		lines = append(lines, fmt.Sprintf("- %s %d pts", m.league.Current.Name, m.league.State.Points))
		lines = append(lines, fmt.Sprintf("- next %s at %d", m.league.Next.Name, m.league.Next.MinPoints))
	} else {
		lines = append(lines, fmt.Sprintf("- %s %d pts (top)", m.league.Current.Name, m.league.State.Points))
	}
	lines = append(lines, fmt.Sprintf("- resets in %d days", m.league.DaysUntilReset))
	if m.league.State.PendingRewardXP > 0 {
		lines = append(lines, fmt.Sprintf("- %d XP unclaimed", m.league.State.PendingRewardXP))
	}
	lines = append(lines, "")
	lines = append(lines, "Raid "+m.raid.WeekKey)
	lines = append(lines, fmt.Sprintf("- %s", m.raid.Boss.Name))
	lines = append(lines, fmt.Sprintf("- sets %d/%d %s", m.raid.TotalSets, m.raid.Boss.WeeklyTargetSets, progressBar(m.raid.TotalSets, m.raid.Boss.WeeklyTargetSets, 14)))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	lines := m.boardLines()
	var out []string
	for i, bl := range lines {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		if bl.kind == lineHeading {
			out = append(out, cursor+bl.text)
			continue
		}
		out = append(out, cursor+"  "+bl.text)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
