package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/recap/internal/document"
	"github.com/nguyentantai21042004/recap/internal/export"
	"github.com/nguyentantai21042004/recap/internal/processor"
	"github.com/nguyentantai21042004/recap/internal/videoref"
)

func newSummarizeCmd(cfgPath *string) *cobra.Command {
	var (
		video      string
		lang       string
		spokenLang string
		style      string
		formats    []string
		outDir     string
	)
	cmd := &cobra.Command{
		Use:   "summarize <source>",
		Short: "Build a sectioned summary from a transcript or media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath, true)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx := cmd.Context()

			req := processor.Request{
				Source:             args[0],
				VideoRef:           videoref.LinkBase(video),
				Language:           lang,
				TranscriptLanguage: spokenLang,
			}
			if style != "" {
				if req.Style, err = document.ParseStyle(style); err != nil {
					return err
				}
			}

			doc, err := a.proc.Generate(ctx, req)
			if err != nil {
				return err
			}

			title := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			if err := a.proc.Persist(ctx, title); err != nil {
				return err
			}

			if len(formats) == 0 {
				formats = a.cfg.Export.Formats
			}
			if outDir == "" {
				outDir = a.cfg.Paths.Output
			}
			written, err := export.WriteAll(title, doc.Render(), outDir, title, formats)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "document %s (%d sections)\n", doc.ID, doc.Len())
			printSections(cmd, doc)
			for _, w := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", w)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&video, "video", "", "video URL section links point to")
	cmd.Flags().StringVar(&lang, "lang", "", "summary language (default from config)")
	cmd.Flags().StringVar(&spokenLang, "transcript-lang", "", "spoken language hint for transcription (default whisper.language)")
	cmd.Flags().StringVar(&style, "style", "", "initial summary style: detailed, brief, concise, fun")
	cmd.Flags().StringSliceVar(&formats, "format", nil, "export formats: markdown, html, docx (repeatable)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default paths.output)")
	return cmd
}

func newRefineCmd(cfgPath *string) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "refine <doc-id> <section-id|all> <style>",
		Short: "Rewrite a section summary in another style",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := document.ParseStyle(args[2])
			if err != nil {
				return err
			}

			a, err := newApp(*cfgPath, true)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx := cmd.Context()

			rec, err := a.proc.Resume(ctx, args[0])
			if err != nil {
				return err
			}

			sectionIDs := []string{args[1]}
			if args[1] == "all" {
				sectionIDs = lo.Map(rec.Snapshot.Sections, func(s document.SectionSnapshot, _ int) string {
					return s.ID
				})
			}
			reqs := lo.Map(sectionIDs, func(id string, _ int) processor.RefineRequest {
				return processor.RefineRequest{SectionID: id, Style: style, Language: lang}
			})

			outcomes, refineErr := a.proc.RefineAll(ctx, reqs)
			if lo.SomeBy(outcomes, func(o processor.Outcome) bool { return o.Applied }) {
				if err := a.proc.Persist(ctx, rec.Title); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, o := range outcomes {
				switch {
				case o.Err != nil:
					fmt.Fprintf(out, "%s: failed: %v\n", o.SectionID, o.Err)
				case o.Stale:
					fmt.Fprintf(out, "%s: discarded, document was rebuilt\n", o.SectionID)
				default:
					fmt.Fprintf(out, "%s [%s]\n%s\n\n", o.SectionID, o.Style, o.Summary)
				}
			}
			return refineErr
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "summary language (default from config)")
	return cmd
}

func newExportCmd(cfgPath *string) *cobra.Command {
	var (
		formats []string
		out     string
	)
	cmd := &cobra.Command{
		Use:   "export <doc-id>",
		Short: "Write a stored document to markdown, html or docx",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath, false)
			if err != nil {
				return err
			}
			defer a.Close()

			rec, err := a.proc.Resume(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			title := lo.Ternary(rec.Title != "", rec.Title, rec.Snapshot.ID)
			rendered := a.proc.Session().Current().Render()

			if format, ok := export.FormatForPath(out); ok {
				if err := export.WriteFile(title, rendered, format, out); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
				return nil
			}

			if len(formats) == 0 {
				formats = a.cfg.Export.Formats
			}
			dir := lo.Ternary(out != "", out, a.cfg.Paths.Output)
			written, err := export.WriteAll(title, rendered, dir, title, formats)
			if err != nil {
				return err
			}
			for _, w := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", w)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&formats, "format", nil, "export formats: markdown, html, docx (repeatable)")
	cmd.Flags().StringVar(&out, "out", "", "output file (format from extension) or directory")
	return cmd
}

func newShowCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show [doc-id]",
		Short: "List stored documents, or print one as markdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath, false)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx := cmd.Context()

			if len(args) == 0 {
				docs, err := a.store.List(ctx)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTITLE\tSECTIONS\tUPDATED")
				for _, d := range docs {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", d.ID, d.Title, d.Sections, d.UpdatedAt.Local().Format("2006-01-02 15:04"))
				}
				return tw.Flush()
			}

			rec, err := a.proc.Resume(ctx, args[0])
			if err != nil {
				return err
			}
			title := lo.Ternary(rec.Title != "", rec.Title, rec.Snapshot.ID)
			fmt.Fprint(cmd.OutOrStdout(), export.Markdown(title, a.proc.Session().Current().Render()))
			return nil
		},
	}
}

func printSections(cmd *cobra.Command, doc *document.Document) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, b := range doc.Render().Blocks {
		fmt.Fprintf(tw, "%s\t%s - %s\t%s\n", b.ID, b.Start, b.End, b.Title)
	}
	tw.Flush()
}

// ensureDirectories creates the folders the pipeline reads from and writes to.
func ensureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
