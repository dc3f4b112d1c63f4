package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ardanlabs/ledger/business/web/errs"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// send performs the http call against the node and decodes the response
// into dataRecv. Error responses are decoded into the node's error format.
func send(ctx context.Context, method string, path string, dataSend any, dataRecv any) error {
	var body io.Reader
	if dataSend != nil {
		data, err := json.Marshal(dataSend)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	url := strings.TrimSuffix(nodeURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := http.Client{Timeout: timeout}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var er errs.Response
		if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
			return fmt.Errorf("node responded with status %d", resp.StatusCode)
		}

		if len(er.Fields) > 0 {
			return fmt.Errorf("%s: %v", er.Error, er.Fields)
		}
		return errors.New(er.Error)
	}

	if dataRecv != nil {
		if err := json.NewDecoder(resp.Body).Decode(dataRecv); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// message is the minimal response every ledger endpoint carries.
type message struct {
	Message string `json:"message"`
}

func printSuccess(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprint(cmd.OutOrStdout(), pterm.Success.Sprintfln(format, args...))
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprint(cmd.ErrOrStderr(), pterm.Error.Sprintln(err))
}
