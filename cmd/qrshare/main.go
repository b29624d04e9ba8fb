// Command qrshare renders a QR code PNG pointing at a deployed scriptdesk
// instance, for sharing the app with field reporters.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

func main() {
	out := flag.String("o", "app_qr_code.png", "output PNG path")
	size := flag.Int("size", 512, "image size in pixels")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: qrshare [-o file.png] [-size px] <url>")
		os.Exit(2)
	}

	url := strings.TrimSpace(flag.Arg(0))
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	// High error correction so the code survives print wear.
	if err := qrcode.WriteFile(url, qrcode.High, *size, *out); err != nil {
		fmt.Fprintln(os.Stderr, "qr generation failed:", err)
		os.Exit(1)
	}

	fmt.Printf("QR code saved to %s\n", *out)
	fmt.Printf("URL: %s\n", url)
}
