package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func GetRequestReturnStuff[T any](url string) (T, int, error) {
	return doRequestReturnStuff[T](http.MethodGet, url, "")
}

func PostRequestReturnStuff[T any](url string, jsonBody string) (T, int, error) {
	return doRequestReturnStuff[T](http.MethodPost, url, jsonBody)
}

func doRequestReturnStuff[T any](method string, url string, jsonBody string) (T, int, error) {
	var objects T

	var body io.Reader
	if jsonBody != "" {
		body = strings.NewReader(jsonBody)
	}

	client := &http.Client{}
	request, err := http.NewRequest(method, url, body)
	if err != nil {
		return objects, 0, err
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.Do(request)
	if err != nil {
		return objects, 0, err
	}
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(&objects); err != nil {
		return objects, response.StatusCode, fmt.Errorf("decoding %s %s: %w", method, url, err)
	}

	return objects, response.StatusCode, nil
}
