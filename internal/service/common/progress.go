package common

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar はラベルごとにプログレスバーを切り替えて進捗を表示する
type ProgressBar struct {
	w     io.Writer
	bar   *progressbar.ProgressBar
	label string
}

// NewProgressBar はwに描画するProgressBarを作成
func NewProgressBar(w io.Writer) *ProgressBar {
	return &ProgressBar{w: w}
}

// Report は進捗を反映する。ラベルが変わると新しいバーを開始する
func (p *ProgressBar) Report(current, total int, label string) {
	if total <= 0 {
		return
	}
	if p.bar == nil || p.label != label {
		p.finish()
		p.bar = newBar(p.w, total, label)
		p.label = label
	}

	_ = p.bar.Set(current)
	if current >= total {
		p.finish()
	}
}

// finish は表示中のバーを完了させる
func (p *ProgressBar) finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	fmt.Fprintln(p.w)
	p.bar = nil
	p.label = ""
}

func newBar(w io.Writer, total int, label string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)
}
