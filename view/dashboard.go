// Copyright IBM Corp. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package view

import (
	"fmt"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	pos "github.com/SmartBFT-Go/stakerotation/pkg"
)

// Dashboard is an interactive terminal view of rounds.
// Key presses change the round parameters and every change plays a new round.
type Dashboard struct {
	rotation pos.Rotation
	config   pos.Config
	round    pos.Round

	grid       *ui.Grid
	parameters *widgets.Paragraph
	validators *widgets.Table
	selected   *widgets.Table
	shares     *widgets.BarChart
	help       *widgets.Paragraph
}

// NewDashboard creates a dashboard that plays rounds with the given rotation
func NewDashboard(rotation pos.Rotation, config pos.Config) *Dashboard {
	d := &Dashboard{
		rotation: rotation,
		config:   config.Clamp(),
	}
	d.initWidgets()
	d.setGrid()
	return d
}

func (d *Dashboard) initWidgets() {
	d.parameters = widgets.NewParagraph()
	d.parameters.Title = "Round parameters"

	d.validators = widgets.NewTable()
	d.validators.Title = "Validators sorted by stake"
	d.validators.RowSeparator = false
	d.validators.Rows = [][]string{{"", "", ""}}

	d.selected = widgets.NewTable()
	d.selected.RowSeparator = false
	d.selected.Rows = [][]string{{"", "", ""}}

	d.shares = widgets.NewBarChart()
	d.shares.Title = "Stake share among the selected validators (%)"
	d.shares.BarGap = 1
	d.shares.NumFormatter = func(f float64) string {
		return fmt.Sprintf("%.0f", f)
	}

	d.help = widgets.NewParagraph()
	d.help.Title = "Keys"
	d.help.Text = KeyHelp + "\n\n" + strings.Join(Notes, "\n")
}

func (d *Dashboard) setGrid() {
	d.grid = ui.NewGrid()
	d.grid.Set(
		ui.NewRow(3.0/20, d.parameters),
		ui.NewRow(12.0/20,
			ui.NewCol(1.0/3, d.validators),
			ui.NewCol(2.0/3,
				ui.NewRow(1.0/2, d.selected),
				ui.NewRow(1.0/2, d.shares))),
		ui.NewRow(5.0/20, d.help),
	)
}

// Play plays a round with the current parameters and refreshes the widgets
func (d *Dashboard) Play() {
	d.round = d.rotation.PlayRound(d.config)
	d.RefreshData()
}

// Round returns the round currently displayed
func (d *Dashboard) Round() pos.Round {
	return d.round
}

// HandleKey applies a key press and reports what the dashboard should do next
func (d *Dashboard) HandleKey(key string) Action {
	var action Action
	d.config, action = ApplyKey(d.config, key)
	if action == ActionReplay {
		d.Play()
	}
	return action
}

// RefreshData prepares the widgets to display the current round
func (d *Dashboard) RefreshData() {
	d.prepareParameters()
	d.prepareValidators()
	d.prepareSelected()
	d.prepareShares()
}

func (d *Dashboard) prepareParameters() {
	c := d.round.Config
	d.parameters.Text = fmt.Sprintf("Validators: [%d](fg:green)   Max stake per validator: [%d](fg:green)   "+
		"Selected per round: [%d](fg:green)   Seed: [%d](fg:green)",
		c.NumValidators, c.MaxStakePerValidator, c.NumSelected, c.Seed)
}

func (d *Dashboard) prepareValidators() {
	sorted := d.round.Validators.SortedByStake()
	selected := d.round.Selected.Validators()

	rows := [][]string{{"#", "id", "stake"}}
	for i, v := range sorted {
		rows = append(rows, []string{fmt.Sprintf("%d", i), v.ID, fmt.Sprintf("%d", v.Stake)})
	}

	d.validators.Rows = rows
	d.validators.RowStyles = map[int]ui.Style{
		0: ui.NewStyle(ui.ColorWhite, ui.ColorClear, ui.ModifierBold),
	}
	for i, v := range sorted {
		if selected.Contains(v.ID) {
			d.validators.RowStyles[i+1] = ui.NewStyle(ui.ColorGreen)
		}
	}
}

func (d *Dashboard) prepareSelected() {
	d.selected.Title = fmt.Sprintf("Validators selected for the round (seed=%d)", d.round.Config.Seed)

	rows := [][]string{{"id", "stake", "stake_share (%)"}}
	for _, sv := range d.round.Selected {
		rows = append(rows, []string{sv.ID, fmt.Sprintf("%d", sv.Stake), FormatShare(sv.StakeShare)})
	}

	d.selected.Rows = rows
	d.selected.RowStyles = map[int]ui.Style{
		0: ui.NewStyle(ui.ColorWhite, ui.ColorClear, ui.ModifierBold),
	}
}

func (d *Dashboard) prepareShares() {
	var data []float64
	var labels []string
	for _, sv := range d.round.Selected {
		data = append(data, sv.StakeShare)
		labels = append(labels, strings.TrimPrefix(sv.ID, pos.IDPrefix))
	}

	d.shares.Data = data
	d.shares.Labels = labels
	// Without any stake every bar is empty
	d.shares.MaxVal = 0
	if d.round.Selected.TotalStake() == 0 {
		d.shares.MaxVal = 100
	}
}

// Run takes over the terminal until the user quits
func (d *Dashboard) Run() error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed initializing termui: %v", err)
	}
	defer ui.Close()

	termWidth, termHeight := ui.TerminalDimensions()
	d.grid.SetRect(0, 0, termWidth, termHeight)

	d.Play()
	ui.Render(d.grid)

	uiEvents := ui.PollEvents()
	for e := range uiEvents {
		switch d.HandleKey(e.ID) {
		case ActionQuit:
			return nil
		case ActionResize:
			payload, ok := e.Payload.(ui.Resize)
			if !ok {
				continue
			}
			d.grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
			ui.Render(d.grid)
		case ActionReplay:
			ui.Render(d.grid)
		}
	}

	return nil
}
