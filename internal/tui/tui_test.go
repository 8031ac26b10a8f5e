package tui

import (
	"io"
	"log/slog"
	"strings"

	"mad-squares/internal/app"
	"mad-squares/internal/config"
	"mad-squares/internal/core"
	"mad-squares/internal/march"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func boardString(g *core.Grid, showCells bool) []string {
	var lines []string
	for _, line := range Glyphs(g, showCells) {
		lines = append(lines, string(line))
	}
	return lines
}

var _ = Describe("Glyph", func() {
	DescribeTable("maps primitive edges to box-drawing runes",
		func(code march.Code, want rune) {
			var e march.Edge
			for _, p := range march.Select(code) {
				e |= p.Edges()
			}
			Expect(Glyph(e)).To(Equal(want))
		},
		Entry("empty", march.Code(0), ' '),
		Entry("full", march.Code(15), ' '),
		Entry("lower-right corner", march.Code(1), '╭'),
		Entry("lower-left corner", march.Code(2), '╮'),
		Entry("top-right corner", march.Code(4), '╰'),
		Entry("top-left corner", march.Code(8), '╯'),
		Entry("horizontal", march.Code(3), '─'),
		Entry("vertical", march.Code(5), '│'),
		Entry("saddle 6", march.Code(6), '┼'),
		Entry("saddle 9", march.Code(9), '┼'),
	)
})

var _ = Describe("Glyphs", func() {
	It("outlines a single cell as a rounded box", func() {
		g := core.NewGrid(2, 2)
		g.Set(0, 0, true)
		Expect(boardString(g, true)).To(Equal([]string{
			"╭─╮  ",
			"│■│  ",
			"╰─╯  ",
			"     ",
			"     ",
		}))
	})

	It("hides cells unless asked", func() {
		g := core.NewGrid(1, 1)
		g.Set(0, 0, true)
		Expect(boardString(g, false)[1]).To(Equal("│ │"))
	})

	It("sizes the board from the grid", func() {
		board := Glyphs(core.NewGrid(12, 16), false)
		Expect(board).To(HaveLen(25))
		Expect(board[0]).To(HaveLen(33))
	})
})

var _ = Describe("Model", func() {
	var (
		state *app.State
		m     Model
	)

	BeforeEach(func() {
		var err error
		state, err = app.NewState(config.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		Expect(err).NotTo(HaveOccurred())
		m = New(state, false)
	})

	update := func(msg tea.Msg) {
		next, _ := m.Update(msg)
		m = next.(Model)
	}

	It("starts with the cursor outside the grid", func() {
		_, inside := state.CursorCell()
		Expect(inside).To(BeFalse())
	})

	It("toggles the cell under a left click", func() {
		update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		Expect(state.Grid.At(0, 0)).To(BeTrue())

		update(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		Expect(state.Grid.At(0, 0)).To(BeFalse())
	})

	It("tracks motion without toggling", func() {
		update(tea.MouseMsg{X: 15, Y: 11, Action: tea.MouseActionMotion})
		cell, inside := state.CursorCell()
		Expect(inside).To(BeTrue())
		Expect(cell).To(Equal(core.Cell{Row: 5, Col: 7}))
		Expect(state.Grid.Live()).To(Equal(len(core.Glider)))
	})

	It("ignores clicks on the border", func() {
		update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		update(tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		Expect(state.Grid.Live()).To(Equal(len(core.Glider)))
	})

	It("handles the evolution keys", func() {
		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
		Expect(state.Generation()).To(Equal(1))

		update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
		Expect(state.Running()).To(BeTrue())

		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
		Expect(state.Grid.Live()).To(BeZero())
		Expect(state.Running()).To(BeFalse())

		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
		Expect(state.Grid.Live()).To(Equal(len(core.Glider)))
	})

	It("quits on q", func() {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		Expect(cmd).NotTo(BeNil())
		Expect(cmd()).To(Equal(tea.Quit()))
	})

	It("renders the board and status", func() {
		view := m.View()
		Expect(view).To(ContainSubstring("pattern: glider"))
		Expect(strings.Count(view, "\n")).To(BeNumerically(">=", 25))
	})
})
