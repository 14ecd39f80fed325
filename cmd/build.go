package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/philosophercode/itinerary-rewind-demo/internal/model"
	"github.com/philosophercode/itinerary-rewind-demo/internal/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildOut        string
	buildCopyPhotos bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the trip viewer to a static index.html with its assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newViewer().Open(cmd.Context())
		if err != nil {
			return fmt.Errorf("loading trip data: %w", err)
		}
		fmt.Printf("Loaded %s\n", sess.Candidate)

		if err := os.MkdirAll(buildOut, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}

		var buf bytes.Buffer
		if err := web.RenderIndex(&buf, web.IndexData{Page: sess.Page}); err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}
		if err := os.WriteFile(filepath.Join(buildOut, "index.html"), buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing index.html: %w", err)
		}
		if err := web.WriteStatic(buildOut); err != nil {
			return fmt.Errorf("writing static assets: %w", err)
		}

		copied := 0
		if buildCopyPhotos && baseURL == "" {
			copied, err = copyPhotos(sess.Doc, dataDir, buildOut)
			if err != nil {
				return err
			}
		}

		fmt.Printf("Wrote %s (%d timeline days, %d gallery photos, %d photos copied)\n",
			filepath.Join(buildOut, "index.html"), len(sess.Page.Timeline), len(sess.Page.Gallery), copied)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "site", "Output directory")
	buildCmd.Flags().BoolVar(&buildCopyPhotos, "copy-photos", true, "Copy referenced photos from --data-dir into the output")
	rootCmd.AddCommand(buildCmd)
}

// copyPhotos copies every photo referenced by doc from src to dst, keeping
// relative paths. Missing photos are logged and skipped.
func copyPhotos(doc *model.TripDocument, src, dst string) (int, error) {
	same, err := samePath(src, dst)
	if err != nil {
		return 0, err
	}
	if same {
		return 0, nil
	}

	seen := make(map[string]bool)
	var paths []string
	add := func(p model.Photo) {
		if p.FilePath != "" && !seen[p.FilePath] {
			seen[p.FilePath] = true
			paths = append(paths, p.FilePath)
		}
	}
	for _, day := range doc.Itinerary {
		for _, p := range day.Photos {
			add(p)
		}
	}
	for _, p := range doc.AllPhotos {
		add(p)
	}

	copied := 0
	for _, rel := range paths {
		clean := filepath.FromSlash(rel)
		if !filepath.IsLocal(clean) {
			logger.Warn("skipping photo outside data dir", zap.String("photo", rel))
			continue
		}
		if err := copyFile(filepath.Join(src, clean), filepath.Join(dst, clean)); err != nil {
			if os.IsNotExist(err) {
				logger.Warn("photo missing", zap.String("photo", rel))
				continue
			}
			return copied, fmt.Errorf("copying %s: %w", rel, err)
		}
		copied++
		logVerbose("  Copied %s", rel)
	}
	return copied, nil
}

func copyFile(from, to string) error {
	in, err := os.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return err
	}
	out, err := os.Create(to)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}
