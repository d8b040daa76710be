package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/content-toolbox/internal/config"
	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
	"github.com/KirkDiggler/content-toolbox/internal/services"
	"github.com/KirkDiggler/content-toolbox/internal/services/drafts"
	"github.com/KirkDiggler/content-toolbox/internal/services/export"
	"github.com/KirkDiggler/content-toolbox/internal/services/generation"
)

const usage = `usage: toolbox <command> [flags]

commands:
  platforms           list supported platforms and their limits
  generate            generate a title, description and hashtags
  save                save a draft to history
  list                list saved drafts, newest first
  show <id>           print one saved draft
  delete <id>         remove a draft from history
  clear               remove every saved draft
  export <id>         write a saved draft as text (and image) files
`

var errUsage = errors.New("invalid usage")

type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	provider *services.Provider
	out      io.Writer
	now      func() time.Time
}

func (a *app) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "platforms":
		return a.platforms()
	case "generate":
		return a.generate(ctx, rest)
	case "save":
		return a.save(ctx, rest)
	case "list":
		return a.list(ctx)
	case "show":
		return a.show(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	case "clear":
		return a.provider.DraftsService.ClearAll(ctx)
	case "export":
		return a.export(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (a *app) platforms() error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLATFORM\tNAME\tTITLE\tDESCRIPTION\tHASHTAGS\tTONES")
	for _, p := range content.Platforms() {
		cfg, _ := content.ConfigFor(p)
		tones := make([]string, len(cfg.SupportedTones))
		for i, t := range cfg.SupportedTones {
			tones[i] = t.Label()
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			p, cfg.Name, cfg.MaxTitleLength,
			optionalLimit(cfg.MaxDescriptionLength),
			optionalLimit(cfg.MaxHashtags),
			strings.Join(tones, ", "))
	}
	return tw.Flush()
}

func optionalLimit(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprint(*n)
}

type draftFlags struct {
	platform    string
	title       string
	description string
	hashtags    string
	imageFile   string
}

func (f *draftFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.platform, "platform", "", "target platform")
	fs.StringVar(&f.title, "title", "", "draft title")
	fs.StringVar(&f.description, "description", "", "draft description")
	fs.StringVar(&f.hashtags, "hashtags", "", "space or comma separated hashtags")
	fs.StringVar(&f.imageFile, "image", "", "file holding an image data URI")
}

func (f *draftFlags) content() (content.DraftContent, error) {
	platform, err := content.ParsePlatform(f.platform)
	if err != nil {
		return content.DraftContent{}, err
	}

	c := content.DraftContent{
		Platform:    platform,
		Title:       f.title,
		Description: f.description,
		Hashtags:    splitHashtags(f.hashtags),
	}
	if f.imageFile != "" {
		data, err := os.ReadFile(f.imageFile)
		if err != nil {
			return c, fmt.Errorf("failed to read image: %w", err)
		}
		c.Image = content.StringPtr(strings.TrimSpace(string(data)))
	}
	return c, nil
}

func splitHashtags(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t'
	})
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		if !strings.HasPrefix(f, "#") {
			f = "#" + f
		}
		tags = append(tags, f)
	}
	return tags
}

func (a *app) generate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var (
		platform = fs.String("platform", "instagram", "target platform")
		topic    = fs.String("topic", "", "what the content is about")
		tone     = fs.String("tone", "professional", "content tone")
		length   = fs.String("length", "medium", "short, medium or long")
		info     = fs.String("info", "", "additional information")
		kind     = fs.String("kind", "all", "title, description, hashtags or all")
		save     = fs.Bool("save", false, "save the result to history")
		check    = fs.Bool("check", false, "warn about platform limits")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	params, err := buildParams(*platform, *topic, *tone, *length, *info)
	if err != nil {
		return err
	}
	k, err := generation.ParseKind(*kind)
	if err != nil {
		return err
	}

	result, err := a.provider.GenerationService.Generate(ctx, k, params)
	if err != nil {
		return err
	}

	draft := content.DraftContent{Platform: params.Platform, Hashtags: []string{}}
	result.Apply(&draft)
	fmt.Fprintf(a.out, "Tone: %s, Length: %s\n", params.Tone.Label(), params.Length.Label())
	printContent(a.out, draft)

	if !*save {
		return nil
	}
	saved, err := a.provider.DraftsService.Save(ctx, &drafts.SaveDraftInput{Content: draft, CheckLimits: *check})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\nSaved as %s (%s)\n", saved.Draft.ID, saved.Outcome)
	return nil
}

func buildParams(platform, topic, tone, length, info string) (*content.GenerationParams, error) {
	p, err := content.ParsePlatform(platform)
	if err != nil {
		return nil, err
	}
	t, err := content.ParseTone(tone)
	if err != nil {
		return nil, err
	}
	l, err := content.ParseLength(length)
	if err != nil {
		return nil, err
	}
	return &content.GenerationParams{
		Platform:       p,
		Topic:          topic,
		Tone:           t,
		Length:         l,
		AdditionalInfo: info,
	}, nil
}

func (a *app) save(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("save", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var df draftFlags
	df.register(fs)
	check := fs.Bool("check", true, "warn about platform limits")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := df.content()
	if err != nil {
		return err
	}

	result, err := a.provider.DraftsService.Save(ctx, &drafts.SaveDraftInput{Content: c, CheckLimits: *check})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\t%s\n", result.Draft.ID, result.Outcome)
	return nil
}

func (a *app) list(ctx context.Context) error {
	list, err := a.provider.DraftsService.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No content history yet")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPLATFORM\tCREATED\tTITLE")
	for _, d := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, d.Platform, d.CreatedAt.Format(time.RFC3339), d.Title)
	}
	return tw.Flush()
}

func requireID(args []string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", fmt.Errorf("%w: expected exactly one draft ID", errUsage)
	}
	return args[0], nil
}

func (a *app) show(ctx context.Context, args []string) error {
	id, err := requireID(args)
	if err != nil {
		return err
	}
	d, err := a.provider.DraftsService.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "ID: %s\nCreated: %s\n", d.ID, d.CreatedAt.Format(time.RFC3339))
	printContent(a.out, d.Content())
	return nil
}

func (a *app) delete(ctx context.Context, args []string) error {
	id, err := requireID(args)
	if err != nil {
		return err
	}
	_, err = a.provider.DraftsService.Delete(ctx, id)
	return err
}

func (a *app) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(a.out)
	dir := fs.String("dir", a.cfg.ExportDir, "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := requireID(fs.Args())
	if err != nil {
		return err
	}
	d, err := a.provider.DraftsService.Get(ctx, id)
	if err != nil {
		return err
	}

	files, err := export.SaveFiles(*dir, &export.Document{
		Params: content.GenerationParams{
			Platform: d.Platform,
		},
		Content:     d.Content(),
		GeneratedAt: a.clock(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, files.TextPath)
	if files.ImagePath != "" {
		fmt.Fprintln(a.out, files.ImagePath)
	}
	return nil
}

func printContent(w io.Writer, c content.DraftContent) {
	fmt.Fprintf(w, "Platform: %s\n", c.Platform.DisplayName())
	if c.Title != "" {
		fmt.Fprintf(w, "\nTITLE:\n%s\n", c.Title)
	}
	if c.Description != "" {
		fmt.Fprintf(w, "\nDESCRIPTION:\n%s\n", c.Description)
	}
	if len(c.Hashtags) > 0 {
		fmt.Fprintf(w, "\nHASHTAGS:\n%s\n", strings.Join(c.Hashtags, " "))
	}
	if c.HasImage() {
		fmt.Fprintln(w, "\nIMAGE: included")
	}
}
