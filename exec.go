package atlas

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/batuhankym/sprite-atlas-tool/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Default output file names used by the pack operation.
const (
	AtlasImageName    = "atlas.png"
	AtlasManifestName = "atlas.json"
)

// Ops holds the source and destination paths of one CLI invocation.
type Ops struct {
	Src      string
	Dst      string
	Manifest string
	Workers  int
	Unpack   bool
}

// loaded holds the result of one concurrent sprite decode.
type loaded struct {
	sprite *Sprite
	err    error
}

// Supported input files.
var validExtensions = []string{".jpg", ".png", ".jpeg", ".bmp", ".gif"}

// Execute runs a complete pack or unpack operation: it loads the inputs,
// invokes the packer (or the unpacker) and writes the outputs to the
// destination directory. It is the CLI entry point and terminates the
// process on failure.
func (p *Packer) Execute(op *Ops) {
	verb := "packing"
	if op.Unpack {
		verb = "unpacking"
	}
	defaultMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("▣ SPRITEPACK", utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("⇢ %s sprites...", verb), utils.DefaultMessage),
	)
	p.Spinner = utils.NewSpinner(defaultMsg, time.Millisecond*80, true)

	// Capture CTRL-C and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		p.Spinner.RestoreCursor()
		os.Exit(1)
	}()

	now := time.Now()

	// Skip the progress indicator when stderr is redirected to a file or pipe.
	interactive := term.IsTerminal(int(os.Stderr.Fd()))
	if interactive {
		p.Spinner.Start()
	}
	var err error
	if op.Unpack {
		err = p.runUnpack(op)
	} else {
		err = p.runPack(op)
	}

	if err != nil {
		p.Spinner.StopMsg = fmt.Sprintf("%s %s %s",
			utils.DecorateText("▣ SPRITEPACK", utils.StatusMessage),
			utils.DecorateText(fmt.Sprintf("%s failed...", verb), utils.DefaultMessage),
			utils.DecorateText("✘", utils.ErrorMessage),
		)
		p.Spinner.Stop()
		log.Fatalf(
			utils.DecorateText("\nError %s the sprites: %s", utils.ErrorMessage),
			verb, utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
	}

	p.Spinner.StopMsg = fmt.Sprintf("%s %s %s",
		utils.DecorateText("▣ SPRITEPACK", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText(fmt.Sprintf("%s finished successfully ✔", verb), utils.SuccessMessage),
	)
	p.Spinner.Stop()

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// runPack loads every sprite image found under the source directory,
// packs them into a single atlas and writes the atlas image together
// with its manifest into the destination directory.
func (p *Packer) runPack(op *Ops) error {
	fs, err := os.Stat(op.Src)
	if err != nil {
		return fmt.Errorf("failed to read the source directory: %w", err)
	}
	if !fs.Mode().IsDir() {
		return errors.New("the pack source must be a directory of sprite images")
	}

	// Limit the concurrently running workers to maxWorkers.
	if op.Workers <= 0 || op.Workers > maxWorkers {
		op.Workers = runtime.NumCPU()
	}

	// Decode the image files from the source directory concurrently.
	// The decode order does not matter: the packing strategy sorts the
	// sprites by name before placing them.
	var wg sync.WaitGroup

	ch := make(chan loaded)
	done := make(chan interface{})
	defer close(done)

	paths, errc := walkDir(done, op.Src, validExtensions)

	wg.Add(op.Workers)
	for i := 0; i < op.Workers; i++ {
		go func() {
			defer wg.Done()
			loader(done, paths, ch)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var sprites []*Sprite
	for res := range ch {
		if res.err != nil {
			return res.err
		}
		sprites = append(sprites, res.sprite)
	}

	if err := <-errc; err != nil {
		return err
	}

	atlas, err := p.Pack(sprites)
	if err != nil {
		return err
	}

	if err := ensureDir(op.Dst); err != nil {
		return err
	}

	imgFile, err := os.Create(filepath.Join(op.Dst, AtlasImageName))
	if err != nil {
		return fmt.Errorf("unable to create the atlas image file: %w", err)
	}
	defer imgFile.Close()

	if err := encodeImg(imgFile, atlas.Img); err != nil {
		return fmt.Errorf("unable to encode the atlas image: %w", err)
	}

	manifest := op.Manifest
	if manifest == "" {
		manifest = filepath.Join(op.Dst, AtlasManifestName)
	}
	mFile, err := os.Create(manifest)
	if err != nil {
		return fmt.Errorf("unable to create the manifest file: %w", err)
	}
	defer mFile.Close()

	return atlas.Manifest.Encode(mFile)
}

// runUnpack loads the atlas image and its manifest, slices out every
// declared frame and writes each extracted sprite as a separate PNG
// file into the destination directory.
func (p *Packer) runUnpack(op *Ops) error {
	src := op.Src

	// Check if the source path is a local image or URL.
	if utils.IsValidUrl(src) {
		tmp, err := utils.DownloadImage(src)
		if tmp != nil {
			defer os.Remove(tmp.Name())
		}
		if err != nil {
			return err
		}
		src = tmp.Name()
	}

	img, err := decodeImg(src)
	if err != nil {
		return err
	}

	manifest := op.Manifest
	if manifest == "" {
		// The manifest defaults to a JSON file sitting next to the atlas image.
		manifest = strings.TrimSuffix(op.Src, filepath.Ext(op.Src)) + ".json"
	}
	data, err := os.ReadFile(manifest)
	if err != nil {
		return fmt.Errorf("failed to read the manifest file: %w", err)
	}

	if err := ValidateManifest(data); err != nil {
		return err
	}
	m, err := ParseManifest(data)
	if err != nil {
		return err
	}

	sprites, err := Unpack(img, m)
	if err != nil {
		return err
	}

	if err := ensureDir(op.Dst); err != nil {
		return err
	}

	// The extracted sprites are written sequentially, in manifest order.
	for _, spr := range sprites {
		file, err := os.Create(filepath.Join(op.Dst, spr.Name+".png"))
		if err != nil {
			return fmt.Errorf("unable to create the sprite file %q: %w", spr.Name, err)
		}
		if err := encodeImg(file, spr.Img); err != nil {
			file.Close()
			return fmt.Errorf("unable to encode sprite %q: %w", spr.Name, err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("unable to close the sprite file %q: %w", spr.Name, err)
		}
	}
	return nil
}

// loader reads the path names from the paths channel and decodes
// each image file into a sprite record.
func loader(done <-chan interface{}, paths <-chan string, res chan<- loaded) {
	for path := range paths {
		spr, err := loadSprite(path)

		select {
		case <-done:
			return
		case res <- loaded{sprite: spr, err: err}:
		}
	}
}

// loadSprite decodes a single sprite image file.
func loadSprite(path string) (*Sprite, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open the sprite file: %w", err)
	}
	defer file.Close()

	return DecodeSprite(file, SpriteName(path))
}

// ensureDir creates the destination directory in case it does not exist yet.
func ensureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create the destination directory: %w", err)
		}
	}
	return nil
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each regular file to a new channel.
// It finishes in case the done channel is getting closed.
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

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			isFileSupported := false
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() {
				return nil
			}

			// Get the file base name.
			fx := filepath.Ext(f.Name())
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
