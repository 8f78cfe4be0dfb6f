package cmdutil

import "context"

// ForEachFile calls fn for each path in order, stopping at the first error or
// when ctx is done. It returns the number of files fn completed.
func ForEachFile(ctx context.Context, paths []string, fn func(string) error) (int, error) {
	done := 0
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		if err := fn(p); err != nil {
			return done, err
		}
		done++
	}
	return done, nil
}
