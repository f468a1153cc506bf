// Copyright IBM Corp. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	pos "github.com/SmartBFT-Go/stakerotation/pkg"
)

const barChartWidth = 40

// Notes explain what the demonstration shows
var Notes = []string{
	"Every validator has its stake capped at the configured maximum.",
	"Selection for a round is weighted by stake, and the seed introduces rotation.",
	"Capping the stake and changing the selected validators every round limits centralization.",
}

// RenderText writes the validators, the selection and a bar chart of the stake shares
func RenderText(w io.Writer, round pos.Round) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Validators sorted by stake (%s)\n\n", round.Config)
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tid\tstake")
	for i, v := range round.Validators.SortedByStake() {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", i, v.ID, v.Stake)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(&sb, "\nValidators selected for the round (seed=%d)\n\n", round.Config.Seed)
	tw = tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tid\tstake\tstake_share (%)")
	for i, sv := range round.Selected {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", i, sv.ID, sv.Stake, FormatShare(sv.StakeShare))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sb.WriteString("\nStake distribution among the selected validators\n\n")
	sb.WriteString(BarChart(round.Selected, barChartWidth))

	sb.WriteString("\n")
	for _, note := range Notes {
		fmt.Fprintf(&sb, "- %s\n", note)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// BarChart draws one horizontal bar per selected validator.
// The largest share spans the full width.
func BarChart(selection pos.Selection, width int) string {
	var maxShare float64
	labelWidth := 0
	for _, sv := range selection {
		if sv.StakeShare > maxShare {
			maxShare = sv.StakeShare
		}
		if len(sv.ID) > labelWidth {
			labelWidth = len(sv.ID)
		}
	}

	var sb strings.Builder
	for _, sv := range selection {
		n := 0
		if maxShare > 0 {
			n = int(sv.StakeShare / maxShare * float64(width))
		}
		fmt.Fprintf(&sb, "%-*s |%s %s\n", labelWidth, sv.ID, strings.Repeat("#", n), FormatShare(sv.StakeShare))
	}
	return sb.String()
}

// FormatShare renders a stake share percentage
func FormatShare(share float64) string {
	return fmt.Sprintf("%.2f", share)
}
