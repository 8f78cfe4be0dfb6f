// internal/runutil/runutil.go
package runutil

import "seqwin/internal/config"

// ChunkSize returns the scan chunk size: the flag when set (> 0), else the
// configured value.
func ChunkSize(flag int64, cfg config.Config) int64 {
	if flag > 0 {
		return flag
	}
	return cfg.ChunkSize
}

// Wrap returns the FASTA line width. A negative flag means "use config";
// 0 disables wrapping.
func Wrap(flag int, cfg config.Config) int {
	if flag >= 0 {
		return flag
	}
	return cfg.Wrap
}

// IndexPath returns explicit if given, otherwise the default index path
// of fastaPath under cfg.
func IndexPath(explicit, fastaPath string, cfg config.Config) string {
	if explicit != "" {
		return explicit
	}
	return cfg.IndexPath(fastaPath)
}
