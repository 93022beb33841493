// Command rlepack compresses and decompresses files with the rlepack
// container format. It acts both as compressor and decompressor:
//
//	rlepack -c [-t 1|2] [-p PASSWD] FILE    compress FILE into FILE.rle
//	rlepack -d [-p PASSWD] FILE             decompress FILE
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rlepack/rlepack"
	"github.com/rlepack/rlepack/crypt"
	"github.com/rlepack/rlepack/format"
)

const compressedExt = ".rle"

func main() {
	encode := flag.Bool("c", false, "compress FILE into FILE"+compressedExt)
	decode := flag.Bool("d", false, "decompress FILE")
	methodNum := flag.Int("t", 2, "RLE method for -c: 1 (method A) or 2 (method B)")
	password := flag.String("p", "", "password to encrypt/decrypt the compressed file")
	flag.Parse()

	if *encode == *decode || flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s (-c [-t 1|2] | -d) [-p PASSWD] FILE\n", os.Args[0])
		os.Exit(2)
	}

	path := flag.Arg(0)

	if *encode {
		runEncode(path, *methodNum, *password)
		return
	}
	runDecode(path, *password)
}

func runEncode(path string, methodNum int, password string) {
	var method format.Method
	switch methodNum {
	case 1:
		method = format.MethodA
	case 2:
		method = format.MethodB
	default:
		log.Fatalf("invalid method %d: must be 1 (method A) or 2 (method B)", methodNum)
	}

	outPath := path + compressedExt
	if err := rlepack.EncodeFile(method, path, outPath); err != nil {
		log.Fatalf("compress %s: %v", path, err)
	}

	fmt.Printf("Compressed %q into %q using method %s (opcode %d)\n",
		path, outPath, method, uint8(method))

	if password != "" {
		if err := crypt.EncryptFile(outPath, password); err != nil {
			log.Fatalf("encrypt %s: %v", outPath, err)
		}
		fmt.Printf("Encrypted %q\n", outPath)
	}
}

func runDecode(path, password string) {
	if password != "" {
		if err := crypt.DecryptFile(path, password); err != nil {
			log.Fatalf("decrypt %s: %v", path, err)
		}
	}

	outPath := strings.TrimSuffix(path, compressedExt)
	if outPath == path {
		outPath = path + ".out"
	}

	method, createdAt, err := rlepack.DecodeFile(path, outPath)
	if err != nil {
		log.Fatalf("decompress %s: %v", path, err)
	}

	fmt.Printf("Decompressed %q into %q using method %s (opcode %d)\n",
		path, outPath, method, uint8(method))
	fmt.Printf("Compression date/time: %s\n", createdAt.Format("2006-01-02 15:04:05"))
}
