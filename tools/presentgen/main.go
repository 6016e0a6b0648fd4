/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

// presentgen is a command line tool that generates BBS+ issuer key
// material, issues credentials over attribute lists, and creates and
// verifies selective-disclosure presentations.

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	math "github.com/IBM/mathlib"
	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/IBM/bbspresent/credential"
	"github.com/IBM/bbspresent/presentation"
)

const (
	PublicKeyFile  = "IssuerPublicKey"
	SecretKeyFile  = "IssuerSecretKey"
	CredentialFile = "Credential"
	BundleFile     = "PresentationBundle"

	BLS12_381_BBS = "BLS12_381_BBS"
)

// command line flags
var (
	app = kingpin.New("presentgen", "Utility for generating BBS+ key material, credentials and selective-disclosure presentations")

	outputDir = app.Flag("output", "The output directory in which to place artifacts").Default("present-config").String()
	curveID   = app.Flag("curve", "The curve to use to generate the crypto material").Short('c').Default(BLS12_381_BBS).Enum(BLS12_381_BBS)

	genIssuerKey = app.Command("keygen", "Generate issuer key material")

	issueCred     = app.Command("issue", "Issue a credential over an ordered attribute list")
	issueKeyInput = issueCred.Flag("key-input", "The folder where the issuer keys are stored").String()
	issueAttrs    = issueCred.Flag("attr", "An attribute value, in order; repeat the flag once per attribute").Required().Strings()

	present         = app.Command("present", "Create a presentation from a credential")
	presentKeyInput = present.Flag("key-input", "The folder where the issuer public key is stored").String()
	presentCredFile = present.Flag("credential", "The credential file to present").String()
	presentAttrs    = present.Flag("attr", "An attribute value, in order; repeat the flag once per attribute").Required().Strings()
	presentReveal   = present.Flag("reveal", "A zero-based attribute index to disclose; repeat the flag once per index").Ints()
	presentNonce    = present.Flag("nonce", "The presentation nonce").String()

	verify         = app.Command("verify", "Verify a presentation")
	verifyKeyInput = verify.Flag("key-input", "The folder where the issuer public key is stored").String()
	verifyBundle   = verify.Flag("bundle", "The presentation bundle file to verify").String()
	verifyRevealed = verify.Flag("revealed", "A disclosed attribute value, in revealed-index order; repeat the flag once per value").Strings()
	verifyNonce    = verify.Flag("nonce", "The presentation nonce").String()
)

var logger = newLogger()

func main() {
	app.HelpFlag.Short('h')

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	var curve *math.Curve
	switch *curveID {
	case BLS12_381_BBS:
		curve = math.Curves[math.BLS12_381_BBS]
	default:
		handleError(fmt.Errorf("invalid curve [%s]", *curveID))
	}

	switch command {

	case genIssuerKey.FullCommand():
		keyPair, err := credential.GenerateKeyPair(curve, nil)
		handleError(err)

		pkBytes, err := keyPair.PublicKeyBytes()
		handleError(err)
		skBytes, err := keyPair.SecretKeyBytes()
		handleError(err)

		handleError(os.MkdirAll(*outputDir, 0770))
		writeFile(filepath.Join(*outputDir, PublicKeyFile), pkBytes)
		writeFile(filepath.Join(*outputDir, SecretKeyFile), skBytes)

		logger.Info("issuer key material written", zap.String("dir", *outputDir))

	case issueCred.FullCommand():
		if *issueKeyInput == "" {
			issueKeyInput = outputDir
		}

		skBytes := readFile(filepath.Join(*issueKeyInput, SecretKeyFile))

		sig, err := credential.Issue(curve, skBytes, attributeBytes(*issueAttrs))
		handleError(err)

		handleError(os.MkdirAll(*outputDir, 0770))
		writeFile(filepath.Join(*outputDir, CredentialFile), sig)

		logger.Info("credential issued", zap.Int("attributes", len(*issueAttrs)))

	case present.FullCommand():
		if *presentKeyInput == "" {
			presentKeyInput = outputDir
		}

		credFile := *presentCredFile
		if credFile == "" {
			credFile = filepath.Join(*outputDir, CredentialFile)
		}

		pkBytes := readFile(filepath.Join(*presentKeyInput, PublicKeyFile))
		sig := readFile(credFile)

		prover := &presentation.Prover{Curve: curve}
		raw, err := prover.ProveBytes(context.Background(), &presentation.ProofRequest{
			Credentials: []presentation.CredentialInput{
				{
					Signature:  sig,
					PublicKey:  pkBytes,
					Attributes: attributeBytes(*presentAttrs),
					Revealed:   *presentReveal,
				},
			},
			Nonce: []byte(*presentNonce),
		})
		handleError(err)

		handleError(os.MkdirAll(*outputDir, 0770))
		writeFile(filepath.Join(*outputDir, BundleFile), raw)

		logger.Info("presentation created", zap.Int("revealed", len(*presentReveal)))

	case verify.FullCommand():
		if *verifyKeyInput == "" {
			verifyKeyInput = outputDir
		}

		bundleFile := *verifyBundle
		if bundleFile == "" {
			bundleFile = filepath.Join(*outputDir, BundleFile)
		}

		pkBytes := readFile(filepath.Join(*verifyKeyInput, PublicKeyFile))
		raw := readFile(bundleFile)

		verifier := &presentation.Verifier{Curve: curve}
		resp := verifier.Verify(&presentation.VerifyRequest{
			Bundle:         raw,
			PublicKeys:     [][]byte{pkBytes},
			RevealedValues: [][][]byte{attributeBytes(*verifyRevealed)},
			Nonce:          []byte(*verifyNonce),
		})

		if !resp.Verified {
			logger.Error("presentation rejected", zap.String("error", resp.Error))
			os.Exit(1)
		}

		logger.Info("presentation verified")
	}
}

func newLogger() *zap.Logger {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zaplogfmt.NewEncoder(config),
		zapcore.AddSync(os.Stderr),
		zapcore.InfoLevel,
	)

	return zap.New(core)
}

func attributeBytes(attrs []string) [][]byte {
	raw := make([][]byte, len(attrs))
	for i, attr := range attrs {
		raw[i] = []byte(attr)
	}

	return raw
}

// writeFile writes bytes to a file and exits in case of an error
func writeFile(path string, contents []byte) {
	handleError(ioutil.WriteFile(path, contents, 0640))
}

// readFile reads a file in full and exits in case of an error
func readFile(path string) []byte {
	contents, err := ioutil.ReadFile(path)
	if err != nil {
		handleError(errors.Wrapf(err, "failed to open file: %s", path))
	}

	return contents
}

func handleError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
