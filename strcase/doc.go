// Package strcase converts identifiers between camelCase and snake_case.
//
//	strcase.Decamelize("HTTPServerName")  // "http_server_name"
//	strcase.Camelize("http_server_name")  // "httpServerName"
//	strcase.Camelize("pet_id", strcase.Pascal()) // "PetId"
package strcase
