package app

import (
	"path/filepath"
	"time"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/clay/internal/export"
	"github.com/Faultbox/clay/internal/logger"
)

// requestExport picks an output path and queues the STL export. The native
// dialog blocks, so it runs off the main thread and hands the path back
// through a channel.
func (a *App) requestExport() {
	dir := a.cfg.ExportDir()
	name := export.Filename("", "clay_"+a.session.Shape().String(), "stl", time.Now())

	if !a.cfg.Export.UseDialog {
		a.queueExport(filepath.Join(dir, name))
		return
	}

	go func() {
		path, err := dialog.File().
			Filter("STL Models", "stl").
			Title("Export STL").
			SetStartDir(dir).
			SetStartFile(name).
			Save()
		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Warn("save dialog failed", zap.Error(err))
			}
			return
		}
		a.queueExport(path)
	}()
}

func (a *App) queueExport(path string) {
	select {
	case a.exports <- path:
	default:
		logger.Warn("export already pending, ignoring", zap.String("path", path))
	}
}

// drainExports writes queued exports. Buffers are only read on the main thread.
func (a *App) drainExports() {
	for {
		select {
		case path := <-a.exports:
			a.exportSTL(path)
		default:
			return
		}
	}
}

func (a *App) exportSTL(path string) {
	m := a.session.Mesh()
	stats, err := export.WriteSTL(path, a.session.Positions(), m.Indices, export.DefaultUnitScale)
	if err != nil {
		logger.Error("STL export failed", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Info("exported STL",
		zap.String("path", stats.Path),
		zap.Int("triangles", stats.Triangles),
		zap.Int("skipped", stats.Skipped),
	)
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	if pixels == nil {
		return
	}
	path := export.Filename(a.cfg.ExportDir(), "screenshot", "png", time.Now())
	if err := export.SavePNG(path, pixels, w, h); err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
