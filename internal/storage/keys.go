package storage

import "fmt"

// Object key layout. Uploads live under <org>/<folder>/<fileName>; the
// promoted template for an organization lives alone under its
// global-template prefix so a purge-then-copy leaves exactly one object.

// UploadKey returns the object key for a user upload.
func UploadKey(organization, folderName, fileName string) string {
	return fmt.Sprintf("%s/%s/%s", organization, folderName, fileName)
}

// GlobalTemplatePrefix returns the per-organization namespace holding the
// currently promoted template object.
func GlobalTemplatePrefix(organization string) string {
	return fmt.Sprintf("%s/global-template/", organization)
}

// GlobalTemplateKey returns the destination key for a promoted template.
func GlobalTemplateKey(organization, fileName string) string {
	return GlobalTemplatePrefix(organization) + fileName
}

// RelatedFileKey returns the object key for an auxiliary attachment of a
// primary upload.
func RelatedFileKey(organization, primaryFileID, fileName string) string {
	return fmt.Sprintf("%s/related/%s/%s", organization, primaryFileID, fileName)
}
