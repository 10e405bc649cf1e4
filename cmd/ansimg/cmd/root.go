package cmd

import (
	"os"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	ansimage "github.com/nitasn/terminal-ansi-image"
)

var (
	widthArg   string
	alphaArg   string
	colorArg   string
	dither     bool
	halfblocks bool
	verbose    bool
)

func init() {
	log.SetHandler(clihander.Default)
	rootCmd.Flags().StringVarP(&widthArg, "width", "w", "", "Number of terminal columns, or a percentage (e.g. 80 or 50%)")
	rootCmd.Flags().StringVarP(&alphaArg, "alpha", "a", "threshold", "Alpha handling: threshold, whiten, or blacken")
	rootCmd.Flags().StringVar(&colorArg, "color", "auto", "Color depth: auto, truecolor, or 256")
	rootCmd.Flags().BoolVar(&dither, "dither", false, "Dither 256-color output (Floyd-Steinberg)")
	rootCmd.Flags().BoolVar(&halfblocks, "halfblocks", false, "Render with Unicode half-block cells")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ansimg <path-or-url>",
	Short: "Render an image as ANSI colored cells in your terminal",
	Long: `Render a raster image as colored text in the terminal.

The image may be a local file or an http(s) URL. Output uses 24-bit
color when the terminal supports it and the 256-color palette
otherwise.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(c *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		img, err := buildImage(args[0])
		if err != nil {
			return err
		}

		return img.Print()
	},
}

// buildImage translates the flag values into a configured render, so
// every argument error is caught before any output is produced.
func buildImage(source string) (*ansimage.Image, error) {
	width, err := ansimage.ParseWidthSpec(widthArg)
	if err != nil {
		return nil, err
	}

	alpha, err := ansimage.ParseAlphaMode(alphaArg)
	if err != nil {
		return nil, err
	}

	img, err := ansimage.Open(source)
	if err != nil {
		return nil, err
	}

	img.Width(width).Alpha(alpha).Dither(dither).Halfblocks(halfblocks)

	if colorArg != "" && colorArg != "auto" {
		mode, err := ansimage.ParseColorMode(colorArg)
		if err != nil {
			return nil, err
		}
		log.Debugf("forced color mode: %s", mode)
		img.Color(mode)
	} else {
		log.Debugf("detected color mode: %s", ansimage.DetectColorMode())
	}

	return img, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
