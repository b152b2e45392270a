package capture

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"unicode/utf8"

	json "github.com/json-iterator/go"

	"github.com/numbersprotocol/capture-go/pkg/proofkit"
)

// maxHeadlineLength is enforced client-side on register and update. The
// limit counts characters, not bytes.
const maxHeadlineLength = 25

// SignOptions configures EIP-191 integrity signing at registration time.
type SignOptions struct {
	// PrivateKey is a secp256k1 private key in hex, with or without a 0x
	// prefix.
	PrivateKey string
}

// RegisterOptions configures a registration. Zero values mean "not
// provided" except PublicAccess, which defaults to true when nil.
type RegisterOptions struct {
	// Filename names the upload; required for byte-buffer inputs, ignored
	// for path inputs (the path's base name wins).
	Filename string

	// Caption is a brief description of the asset.
	Caption string

	// Headline is the asset title, at most 25 characters.
	Headline string

	// PublicAccess pins the asset to the public IPFS gateway. Nil means
	// true.
	PublicAccess *bool

	// Sign, when set, binds the registrant's identity to the asset's
	// integrity proof before the provenance chain attributes it on-chain.
	Sign *SignOptions
}

// Register uploads a file as a new asset. The call is not idempotent:
// registering the same content twice creates two assets.
func (c *Client) Register(ctx context.Context, file FileInput, opts RegisterOptions) (*Asset, error) {
	if utf8.RuneCountInString(opts.Headline) > maxHeadlineLength {
		return nil, newValidationError("headline must be 25 characters or less")
	}

	data, filename, mimeType, err := file.normalize(opts.Filename)
	if err != nil {
		return nil, err
	}

	c.logger.Debug(ctx, "Registering asset",
		"filename", filename,
		"mimeType", mimeType,
		"size", len(data),
		"signed", opts.Sign != nil,
	)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	publicAccess := true
	if opts.PublicAccess != nil {
		publicAccess = *opts.PublicAccess
	}
	if err := form.WriteField("public_access", strconv.FormatBool(publicAccess)); err != nil {
		return nil, fmt.Errorf("failed to build registration form: %w", err)
	}
	if opts.Caption != "" {
		if err := form.WriteField("caption", opts.Caption); err != nil {
			return nil, fmt.Errorf("failed to build registration form: %w", err)
		}
	}
	if opts.Headline != "" {
		if err := form.WriteField("headline", opts.Headline); err != nil {
			return nil, fmt.Errorf("failed to build registration form: %w", err)
		}
	}

	if opts.Sign != nil && opts.Sign.PrivateKey != "" {
		if err := writeSignatureFields(form, data, mimeType, opts.Sign.PrivateKey); err != nil {
			return nil, err
		}
	}

	if err := writeFilePart(form, "asset_file", filename, mimeType, data); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize registration form: %w", err)
	}

	body, err := c.do(ctx, apiRequest{
		method:      http.MethodPost,
		url:         c.baseURL + "/assets/",
		contentType: form.FormDataContentType(),
		body:        &buf,
	})
	if err != nil {
		c.logger.Error(ctx, "Asset registration failed", "filename", filename, "error", err)
		return nil, err
	}

	asset, err := decodeAsset(body)
	if err != nil {
		return nil, err
	}

	c.logger.Info(ctx, "Asset registered successfully", "nid", asset.NID, "filename", asset.Filename)
	return asset, nil
}

// writeSignatureFields hashes the payload, stamps an integrity proof,
// signs it per EIP-191, and attaches the canonical proof JSON plus a
// one-element signature array to the registration form. The platform
// reserves multi-signature registration for future use.
func writeSignatureFields(form *multipart.Writer, data []byte, mimeType, privateKey string) error {
	proof := proofkit.NewIntegrityProof(proofkit.Sha256Hex(data), mimeType)

	signature, err := proofkit.SignIntegrityProof(proof, privateKey)
	if err != nil {
		return newValidationError(fmt.Sprintf("failed to sign integrity proof: %v", err))
	}

	canonical, err := proofkit.CanonicalProofJSON(proof)
	if err != nil {
		return fmt.Errorf("failed to serialize integrity proof: %w", err)
	}
	if err := form.WriteField("signed_metadata", string(canonical)); err != nil {
		return fmt.Errorf("failed to build registration form: %w", err)
	}

	signatures, err := json.Marshal([]proofkit.AssetSignature{signature})
	if err != nil {
		return fmt.Errorf("failed to serialize signature: %w", err)
	}
	if err := form.WriteField("signature", string(signatures)); err != nil {
		return fmt.Errorf("failed to build registration form: %w", err)
	}

	return nil
}

// writeFilePart adds a file part carrying the payload's real MIME type;
// multipart.Writer.CreateFormFile would pin application/octet-stream.
func writeFilePart(form *multipart.Writer, field, filename, mimeType string, data []byte) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, escapeQuotes(filename)))
	header.Set("Content-Type", mimeType)

	part, err := form.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("failed to write file part: %w", err)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
