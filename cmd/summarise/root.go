package main

import (
	"github.com/spf13/cobra"

	"github.com/rob137/summarise-youtube-video/internal/config"
	"github.com/rob137/summarise-youtube-video/internal/logger"
	"github.com/rob137/summarise-youtube-video/internal/processor"
	"github.com/rob137/summarise-youtube-video/internal/summarizer"
	"github.com/rob137/summarise-youtube-video/internal/transcript"
	"github.com/rob137/summarise-youtube-video/pkg/executor"
)

var (
	cfgFile        string
	outputDir      string
	apiKey         string
	languages      []string
	model          string
	docxExport     bool
	transcriptOnly bool
)

var rootCmd = &cobra.Command{
	Use:   "summarise [URL]",
	Short: "Summarize a YouTube video's transcript with Gemini",
	Long: `Fetches a YouTube video's transcript via yt-dlp, cleans and
summarizes it through the Gemini API, and writes a markdown document
with brief, medium and detailed summaries plus a timestamped transcript.`,
	Example: `  # Summarize a video
  summarise "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
  summarise dQw4w9WgXcQ

  # Just fetch the transcript, no API calls
  summarise dQw4w9WgXcQ --transcript-only

  # Also export a .docx copy
  summarise dQw4w9WgXcQ --docx -o ~/summaries`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		proc, err := buildProcessor(cfg, log)
		if err != nil {
			return err
		}

		return proc.Process(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path (YAML)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: data/output)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (default: GEMINI_API_KEY env)")
	rootCmd.PersistentFlags().StringSliceVarP(&languages, "lang", "l", nil, "Preferred caption language codes, in order")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "Gemini model to use")
	rootCmd.PersistentFlags().BoolVar(&docxExport, "docx", false, "Also export the document as .docx")
	rootCmd.Flags().BoolVar(&transcriptOnly, "transcript-only", false, "Skip summarization, write the transcript only")
}

// setup loads config and applies flag overrides.
func setup() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	if outputDir != "" {
		cfg.Paths.Output = outputDir
	}
	if apiKey != "" {
		cfg.Gemini.APIKeys = []string{apiKey}
	}
	if len(languages) > 0 {
		cfg.YTDLP.Languages = languages
	}
	if model != "" {
		cfg.Gemini.Model = model
	}

	return cfg, logger.New(cfg.Logging.Level), nil
}

func buildProcessor(cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	exec := executor.New()
	fetcher := transcript.New(cfg.YTDLP.BinaryPath, cfg.YTDLP.Languages, cfg.Paths.Temp, exec, log)

	var summ summarizer.Summarizer
	if !transcriptOnly {
		var err error
		summ, err = summarizer.New(cfg.Gemini, log)
		if err != nil {
			return nil, err
		}
	}

	return processor.New(cfg, fetcher, summ, log, processor.Options{
		TranscriptOnly: transcriptOnly,
		Docx:           docxExport,
	}), nil
}
