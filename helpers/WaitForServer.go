package helpers

import (
	"fmt"
	"net/http"
	"time"
)

// WaitForServer polls baseURL/health until it answers 200 or the attempts
// run out.
func WaitForServer(baseURL string) error {
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			return nil
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("server at %s did not become healthy", baseURL)
}
