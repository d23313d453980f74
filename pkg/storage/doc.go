// Package storage uploads newsletter assets to S3-compatible object storage.
//
// Images referenced by the newsletter must be reachable by the mail client,
// so uploads are stored under public-read keys and the editor receives a
// plain URL back. [UploadImage] enforces [ImageRules] (PNG, JPEG or GIF
// recognised from magic bytes, at most [MaxImageSize]) and [PublishHTML] stores the rendered document as
// the "view online" copy under published/<slug>.html.
//
//	s, err := storage.New(storage.Config{
//		Bucket:    "newsletter",
//		AccessKey: key,
//		SecretKey: secret,
//		Endpoint:  "http://localhost:9000",
//		PathStyle: true,
//	})
//	obj, err := storage.UploadImage(ctx, s, file, header.Size)
package storage
