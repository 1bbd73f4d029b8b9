package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/term"

	"github.com/contentaware/carve"
	"github.com/contentaware/carve/utils"
)

const HelpBanner = `
┌─┐┌─┐┬─┐┬  ┬┌─┐
│  ├─┤├┬┘└┐┌┘├┤
└─┘┴ ┴┴└─ └┘ └─┘

Content aware image resize library.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// result holds the relevant information about the resizing process and the generated image.
type result struct {
	path string
	err  error
}

var (
	// imgurl holds the file being accessed be it normal file or pipe name.
	imgurl *os.File
	// spinner used to instantiate and call the progress indicator.
	spinner *utils.Spinner
)

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source")
	destination = flag.String("out", pipeName, "Destination")
	newWidth    = flag.Int("width", 0, "New width")
	newHeight   = flag.Int("height", 0, "New height")
	percentage  = flag.Bool("perc", false, "Interpret width and height as percentage of the source size")
	strategy    = flag.String("strategy", "", "Seam search strategy (optimal, greedy, graph-shortest-path)")
	seamColor   = flag.String("seamcolor", "", "Hex color of the debug seam overlay")
	debug       = flag.Bool("debug", false, "Save a visualization of the first removable seam")
	compare     = flag.Bool("compare", false, "Save a side by side comparison against uniform scaling")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
	confFile    = flag.String("conf", "", "YAML file with default settings")

	// File related variables
	fs  os.FileInfo
	err error
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := DefaultConfig()
	if *confFile != "" {
		cfg, err = LoadConfig(*confFile)
		if err != nil {
			log.Fatalf(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
	}
	mergeFlags(cfg)

	st, err := carve.ParseStrategy(cfg.Strategy)
	if err != nil {
		log.Fatalf(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	opts := &options{
		width:      cfg.Width,
		height:     cfg.Height,
		percentage: cfg.Percentage,
		strategy:   st,
		seamColor:  cfg.SeamColor,
		debug:      *debug,
		compare:    *compare,
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ CARVE", utils.StatusMessage),
		utils.DecorateText("is resizing the image...", utils.DefaultMessage))
	spinner = utils.NewSpinner(spinnerText, time.Millisecond*200, true)

	if cfg.Width > 0 || cfg.Height > 0 {
		// Supported files
		validExtensions := []string{".jpg", ".png", ".jpeg", ".bmp", ".gif"}

		// Check if source path is a local image or URL.
		if utils.IsValidUrl(*source) {
			src, err := utils.DownloadImage(*source)
			if err != nil {
				log.Fatalf(
					utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
					utils.DecorateText(err.Error(), utils.DefaultMessage),
				)
			}
			defer src.Close()
			defer os.Remove(src.Name())

			fs, err = src.Stat()
			if err != nil {
				log.Fatalf(
					utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
					utils.DecorateText(err.Error(), utils.DefaultMessage),
				)
			}
			img, err := os.Open(src.Name())
			if err != nil {
				log.Fatalf(
					utils.DecorateText("Unable to open the temporary image file: %v", utils.ErrorMessage),
					utils.DecorateText(err.Error(), utils.DefaultMessage),
				)
			}
			imgurl = img
		} else {
			// Check if the source is a pipe name or a regular file.
			if *source == pipeName {
				fs, err = os.Stdin.Stat()
			} else {
				fs, err = os.Stat(*source)
			}
			if err != nil {
				log.Fatalf(
					utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
					utils.DecorateText(err.Error(), utils.DefaultMessage),
				)
			}
		}

		now := time.Now()

		switch mode := fs.Mode(); {
		case mode.IsDir():
			var wg sync.WaitGroup
			// Read destination file or directory.
			_, err := os.Stat(*destination)
			if err != nil {
				err = os.Mkdir(*destination, 0755)
				if err != nil {
					log.Fatalf(
						utils.DecorateText("Unable to get dir stats: %v\n", utils.ErrorMessage),
						utils.DecorateText(err.Error(), utils.DefaultMessage),
					)
				}
			}

			// Limit the concurrently running workers to maxWorkers.
			conc := cfg.Workers
			if conc == 0 {
				conc = *workers
			}
			if conc <= 0 || conc > maxWorkers {
				conc = runtime.NumCPU()
			}

			// Process recursively the image files from the specified directory concurrently.
			ch := make(chan result)
			done := make(chan interface{})
			defer close(done)

			paths, errc := walkDir(done, *source, validExtensions)

			wg.Add(conc)
			for i := 0; i < conc; i++ {
				go func() {
					defer wg.Done()
					consumer(done, paths, *destination, opts, ch)
				}()
			}

			// Close the channel after the values are consumed.
			go func() {
				defer close(ch)
				wg.Wait()
			}()

			// Consume the channel values.
			for res := range ch {
				printStatus(res.path, res.err)
			}

			if err := <-errc; err != nil {
				fmt.Fprint(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
			}

		case mode.IsRegular() || mode&os.ModeNamedPipe != 0: // check for regular files or pipe names
			ext := filepath.Ext(*destination)
			if !isValidExtension(ext, validExtensions) && *destination != pipeName {
				log.Fatalf(utils.DecorateText(fmt.Sprintf("%v file type not supported", ext), utils.ErrorMessage))
			}

			err := processor(*source, *destination, opts)
			printStatus(*destination, err)
		}
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	} else {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide a width, height or percentage for image rescaling!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}
}

// options groups the resolved resize settings handed over to the workers.
type options struct {
	width      int
	height     int
	percentage bool
	strategy   carve.Strategy
	seamColor  string
	debug      bool
	compare    bool
}

// mergeFlags overrides the configuration values with the explicitly provided flags.
func mergeFlags(cfg *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *newWidth
		case "height":
			cfg.Height = *newHeight
		case "perc":
			cfg.Percentage = *percentage
		case "strategy":
			cfg.Strategy = *strategy
		case "seamcolor":
			cfg.SeamColor = *seamColor
		case "conc":
			cfg.Workers = *workers
		}
	})
}

// walkDir starts a goroutine to walk the specified directory tree in recursive manner
// and send the path of each regular file on the string channel.
// It sends the result of the walk on the error channel.
// It terminates in case done channel is closed.
func walkDir(
	done <-chan interface{},
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
			isFileSupported := false
			if err != nil {
				return err
			}
			if !info.Mode().IsRegular() {
				return nil
			}

			// Get the file base name.
			fx := filepath.Ext(info.Name())
			for _, ext := range srcExts {
				if ext == fx {
					isFileSupported = true
					break
				}
			}

			if isFileSupported {
				select {
				case <-done:
					return errors.New("directory walk cancelled")
				case pathChan <- path:
				}
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// consumer reads the path names from the paths channel and
// calls the carving processor against the source image
// then sends the results on a new channel.
func consumer(
	done <-chan interface{},
	paths <-chan string,
	dest string,
	opts *options,
	res chan<- result,
) {
	for src := range paths {
		dest := filepath.Join(dest, filepath.Base(src))
		err := processor(src, dest, opts)

		select {
		case <-done:
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// processor calls the resizer method over the source image and
// returns the error in case exists, otherwise nil.
func processor(in, out string, opts *options) error {
	src, dst, err := pathToFile(in, out)
	if err != nil {
		return err
	}
	defer func() {
		if f, ok := src.(*os.File); ok {
			f.Close()
		}
	}()
	defer func() {
		if f, ok := dst.(*os.File); ok {
			f.Close()
		}
	}()

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	// Start the progress indicator.
	spinner.Start()
	err = resizeImage(src, dst, out, opts)

	stopMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ CARVE", utils.StatusMessage),
		utils.DecorateText("is resizing the image... ✔", utils.DefaultMessage))
	spinner.StopMsg = stopMsg

	// Stop the progress indicator.
	spinner.Stop()

	return err
}

// resizeImage decodes the source image, converts the requested percentages
// to pixel sizes, runs the carver and encodes the generated image. The target
// conversion happens here on purpose: the resizer core only deals in pixels.
func resizeImage(src io.Reader, dst io.Writer, out string, opts *options) error {
	img, err := carve.DecodeImage(src)
	if err != nil {
		return err
	}
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()

	nw, nh := opts.width, opts.height
	if opts.percentage {
		wp, hp := opts.width, opts.height
		if wp == 0 {
			wp = 100
		}
		if hp == 0 {
			hp = 100
		}
		if wp < 1 || wp > 100 || hp < 1 || hp > 100 {
			return errors.New("percentage values should be between 1 and 100")
		}
		nw = int(float64(dx) * float64(wp) / 100)
		nh = int(float64(dy) * float64(hp) / 100)
	}
	// A zero target keeps the affected dimension untouched.
	if nw == 0 {
		nw = dx
	}
	if nh == 0 {
		nh = dy
	}

	proc := &carve.Processor{
		NewWidth:  nw,
		NewHeight: nh,
		Strategy:  opts.strategy,
		SeamColor: opts.seamColor,
	}

	if opts.debug && out != pipeName {
		if err := saveSeamOverlay(img, proc, out); err != nil {
			return err
		}
	}

	res, err := carve.Resize(proc, img)
	if err != nil {
		return err
	}

	if opts.compare && out != pipeName {
		if err := saveComparison(img, res, out); err != nil {
			return err
		}
	}

	return carve.EncodeImage(dst, res, filepath.Ext(out))
}

// saveSeamOverlay writes an image with the first removable seam painted over,
// next to the destination file.
func saveSeamOverlay(img *image.NRGBA, proc *carve.Processor, out string) error {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()

	c := carve.NewCarver(dx, dy)
	c.Strategy = proc.Strategy

	energy := carve.SobelEnergy(img)
	var seam carve.Seam
	if proc.NewWidth < dx {
		seam = c.FindVerticalSeam(energy)
	} else {
		seam = c.FindHorizontalSeam(energy)
	}
	overlay := c.DrawSeam(img, seam, proc.SeamColor)

	return writeSideFile(out, "_seam", overlay)
}

// saveComparison writes the uniformly rescaled image and the seam carved one
// side by side, next to the destination file.
func saveComparison(img *image.NRGBA, res image.Image, out string) error {
	rb := res.Bounds()
	scaled := imaging.Resize(img, rb.Dx(), rb.Dy(), imaging.Lanczos)

	comparison := image.NewNRGBA(image.Rect(0, 0, rb.Dx()*2, rb.Dy()))
	draw.Draw(comparison, image.Rect(0, 0, rb.Dx(), rb.Dy()), scaled, image.Point{}, draw.Src)
	draw.Draw(comparison, image.Rect(rb.Dx(), 0, rb.Dx()*2, rb.Dy()), res, rb.Min, draw.Src)

	return writeSideFile(out, "_compare", comparison)
}

// writeSideFile saves the image next to the destination path with the provided suffix.
func writeSideFile(out, suffix string, img image.Image) error {
	ext := filepath.Ext(out)
	path := strings.TrimSuffix(out, ext) + suffix + ext

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create the side file: %w", err)
	}
	defer f.Close()

	return carve.EncodeImage(f, img, ext)
}

// pathToFile converts the source and destination paths to readable and writable files.
func pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
		err error
	)
	// Check if the source path is a local image or URL.
	if utils.IsValidUrl(in) {
		src = imgurl
	} else {
		// Check if the source is a pipe name or a regular file.
		if in == pipeName {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				return nil, nil, errors.New("`-` should be used with a pipe for stdin")
			}
			src = os.Stdin
		} else {
			src, err = os.Open(in)
			if err != nil {
				return nil, nil, fmt.Errorf("unable to open the source file: %w", err)
			}
		}
	}

	// Check if the destination is a pipe name or a regular file.
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		dst, err = os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
		}
	}
	return src, dst, nil
}

// printStatus displays the relevant information about the resizing process.
func printStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr,
			utils.DecorateText("\nError resizing the image: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
		os.Exit(1)
	} else {
		if fname != pipeName {
			fmt.Fprintf(os.Stderr, "\nThe resized image has been saved as: %s %s\n",
				utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
				utils.DefaultColor,
			)
		}
	}
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}
