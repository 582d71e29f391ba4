// Copyright 2024 The cryptsuite Authors
// This file is part of the cryptsuite library.
//
// The cryptsuite library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The cryptsuite library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the cryptsuite library. If not, see <http://www.gnu.org/licenses/>.

// cryptsuite is a command-line front end for the suite: SHA-3 hashing,
// passphrase key generation, symmetric and elliptic authenticated
// encryption, and Schnorr signing over E-521.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/kittera/cryptosuite/crypto"
	"github.com/kittera/cryptosuite/crypto/sha3"
)

var (
	passphraseFlag = &cli.StringFlag{
		Name:    "passphrase",
		Aliases: []string{"p"},
		Usage:   "passphrase (prompted when omitted)",
	}
	inFlag = &cli.StringFlag{
		Name:    "in",
		Aliases: []string{"i"},
		Usage:   "input `FILE` (stdin when omitted)",
	}
	outFlag = &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "output `FILE` (stdout when omitted)",
	}
	auxFlag = &cli.StringFlag{
		Name:     "aux",
		Usage:    "auxiliary salt/tag `FILE`",
		Required: true,
	}
	pubFlag = &cli.StringFlag{
		Name:     "pub",
		Usage:    "public key `FILE`",
		Required: true,
	}
)

func main() {
	app := &cli.App{
		Name:  "cryptsuite",
		Usage: "SHA-3/KMACXOF256 hashing and E-521 public-key operations",
		Commands: []*cli.Command{
			hashCommand,
			sha3Command,
			shakeCommand,
			tagCommand,
			keygenCommand,
			encryptCommand,
			decryptCommand,
			ecEncryptCommand,
			ecDecryptCommand,
			signCommand,
			verifyCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var hashCommand = &cli.Command{
	Name:  "hash",
	Usage: "compute the plain 64-byte KMACXOF256 hash of the input",
	Flags: []cli.Flag{inFlag},
	Action: func(ctx *cli.Context) error {
		m, err := readInput(ctx)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(crypto.Hash(m)))
		return nil
	},
}

var sha3Command = &cli.Command{
	Name:  "sha3",
	Usage: "compute a SHA-3 digest of the input",
	Flags: []cli.Flag{
		inFlag,
		&cli.IntFlag{Name: "size", Usage: "digest size in bits (224, 256, 384 or 512)", Value: 256},
	},
	Action: func(ctx *cli.Context) error {
		m, err := readInput(ctx)
		if err != nil {
			return err
		}
		var sum []byte
		switch ctx.Int("size") {
		case 224:
			h := sha3.Sum224(m)
			sum = h[:]
		case 256:
			h := sha3.Sum256(m)
			sum = h[:]
		case 384:
			h := sha3.Sum384(m)
			sum = h[:]
		case 512:
			h := sha3.Sum512(m)
			sum = h[:]
		default:
			return fmt.Errorf("unsupported digest size %d", ctx.Int("size"))
		}
		fmt.Println(hex.EncodeToString(sum))
		return nil
	},
}

var shakeCommand = &cli.Command{
	Name:  "shake",
	Usage: "squeeze SHAKE output over the input",
	Flags: []cli.Flag{
		inFlag,
		&cli.IntFlag{Name: "security", Usage: "security level (128 or 256)", Value: 256},
		&cli.IntFlag{Name: "len", Usage: "output length in bytes", Value: 64},
	},
	Action: func(ctx *cli.Context) error {
		m, err := readInput(ctx)
		if err != nil {
			return err
		}
		var out []byte
		switch ctx.Int("security") {
		case 128:
			out = sha3.ShakeSum128(m, ctx.Int("len"))
		case 256:
			out = sha3.ShakeSum256(m, ctx.Int("len"))
		default:
			return fmt.Errorf("unsupported security level %d", ctx.Int("security"))
		}
		fmt.Println(hex.EncodeToString(out))
		return nil
	},
}

var tagCommand = &cli.Command{
	Name:  "tag",
	Usage: "compute a 64-byte authentication tag under a passphrase",
	Flags: []cli.Flag{inFlag, passphraseFlag},
	Action: func(ctx *cli.Context) error {
		m, err := readInput(ctx)
		if err != nil {
			return err
		}
		pw, err := passphrase(ctx, false)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(crypto.Tag(pw, m)))
		return nil
	},
}

var keygenCommand = &cli.Command{
	Name:  "keygen",
	Usage: "derive an E-521 key pair from a passphrase and write the public key",
	Flags: []cli.Flag{passphraseFlag, outFlag},
	Action: func(ctx *cli.Context) error {
		pw, err := passphrase(ctx, true)
		if err != nil {
			return err
		}
		key, err := crypto.DeriveKey(nil, pw)
		if err != nil {
			return err
		}
		if err := writeOutput(ctx, key.Marshal()); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintln(os.Stderr, "public key written")
		return nil
	},
}

var encryptCommand = &cli.Command{
	Name:  "encrypt",
	Usage: "encrypt the input under a passphrase",
	Flags: []cli.Flag{inFlag, outFlag, auxFlag, passphraseFlag},
	Action: func(ctx *cli.Context) error {
		m, err := readInput(ctx)
		if err != nil {
			return err
		}
		pw, err := passphrase(ctx, true)
		if err != nil {
			return err
		}
		cg, err := crypto.EncryptSymmetric(nil, m, pw)
		if err != nil {
			return err
		}
		if err := os.WriteFile(ctx.String("aux"), cg.MarshalAux(), 0600); err != nil {
			return err
		}
		return writeOutput(ctx, cg.C)
	},
}

var decryptCommand = &cli.Command{
	Name:  "decrypt",
	Usage: "decrypt a passphrase cryptogram",
	Flags: []cli.Flag{inFlag, outFlag, auxFlag, passphraseFlag},
	Action: func(ctx *cli.Context) error {
		c, err := readInput(ctx)
		if err != nil {
			return err
		}
		aux, err := os.ReadFile(ctx.String("aux"))
		if err != nil {
			return err
		}
		cg, err := crypto.UnmarshalAux(aux, c)
		if err != nil {
			return err
		}
		pw, err := passphrase(ctx, false)
		if err != nil {
			return err
		}
		m, err := crypto.DecryptSymmetric(cg, pw)
		if err != nil {
			return err
		}
		return writeOutput(ctx, m)
	},
}

var ecEncryptCommand = &cli.Command{
	Name:  "ec-encrypt",
	Usage: "encrypt the input under an E-521 public key",
	Flags: []cli.Flag{inFlag, outFlag, auxFlag, pubFlag},
	Action: func(ctx *cli.Context) error {
		m, err := readInput(ctx)
		if err != nil {
			return err
		}
		pub, err := readPublicKey(ctx)
		if err != nil {
			return err
		}
		cg, err := crypto.EncryptECIES(nil, m, pub)
		if err != nil {
			return err
		}
		if err := os.WriteFile(ctx.String("aux"), cg.MarshalAux(), 0600); err != nil {
			return err
		}
		return writeOutput(ctx, cg.C)
	},
}

var ecDecryptCommand = &cli.Command{
	Name:  "ec-decrypt",
	Usage: "decrypt an elliptic cryptogram with a passphrase",
	Flags: []cli.Flag{inFlag, outFlag, auxFlag, passphraseFlag},
	Action: func(ctx *cli.Context) error {
		c, err := readInput(ctx)
		if err != nil {
			return err
		}
		aux, err := os.ReadFile(ctx.String("aux"))
		if err != nil {
			return err
		}
		cg, err := crypto.UnmarshalEllipticAux(aux, c)
		if err != nil {
			return err
		}
		pw, err := passphrase(ctx, false)
		if err != nil {
			return err
		}
		m, err := crypto.DecryptECIES(cg, pw)
		if err != nil {
			return err
		}
		return writeOutput(ctx, m)
	},
}

var signCommand = &cli.Command{
	Name:  "sign",
	Usage: "sign the input with a passphrase-derived key",
	Flags: []cli.Flag{inFlag, outFlag, passphraseFlag},
	Action: func(ctx *cli.Context) error {
		m, err := readInput(ctx)
		if err != nil {
			return err
		}
		pw, err := passphrase(ctx, true)
		if err != nil {
			return err
		}
		return writeOutput(ctx, crypto.Sign(m, pw).Marshal())
	},
}

var verifyCommand = &cli.Command{
	Name:  "verify",
	Usage: "verify a signature against a public key",
	Flags: []cli.Flag{
		inFlag,
		pubFlag,
		&cli.StringFlag{Name: "sig", Usage: "signature `FILE`", Required: true},
	},
	Action: func(ctx *cli.Context) error {
		m, err := readInput(ctx)
		if err != nil {
			return err
		}
		pub, err := readPublicKey(ctx)
		if err != nil {
			return err
		}
		sb, err := os.ReadFile(ctx.String("sig"))
		if err != nil {
			return err
		}
		sig, err := crypto.UnmarshalSignature(sb)
		if err != nil {
			return err
		}
		if !crypto.Verify(sig, m, pub) {
			return errors.New("signature does not verify")
		}
		color.New(color.FgGreen).Fprintln(os.Stderr, "signature verified")
		return nil
	},
}

func readInput(ctx *cli.Context) ([]byte, error) {
	if name := ctx.String("in"); name != "" {
		return os.ReadFile(name)
	}
	return io.ReadAll(os.Stdin)
}

func writeOutput(ctx *cli.Context, b []byte) error {
	if name := ctx.String("out"); name != "" {
		return os.WriteFile(name, b, 0600)
	}
	_, err := os.Stdout.Write(b)
	return err
}

func readPublicKey(ctx *cli.Context) (*crypto.PublicKey, error) {
	b, err := os.ReadFile(ctx.String("pub"))
	if err != nil {
		return nil, err
	}
	return crypto.UnmarshalPublicKey(b)
}

// passphrase returns the --passphrase flag, or prompts on the terminal.
// When confirm is set the prompt is repeated and both entries must match.
func passphrase(ctx *cli.Context, confirm bool) ([]byte, error) {
	if ctx.IsSet("passphrase") {
		return []byte(ctx.String("passphrase")), nil
	}
	if !term.IsTerminal(int(syscall.Stdin)) {
		return nil, errors.New("no --passphrase given and stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, "Passphrase: ")
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	if confirm {
		fmt.Fprint(os.Stderr, "Repeat passphrase: ")
		again, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, err
		}
		if string(pw) != string(again) {
			return nil, errors.New("passphrases do not match")
		}
	}
	return pw, nil
}
