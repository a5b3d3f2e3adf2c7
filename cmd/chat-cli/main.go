// chat-cli mounts one conversation in the terminal against a running
// chat-svc.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/golang/glog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"gomarket/internal/chat/client"
	"gomarket/internal/chat/draft"
	"gomarket/internal/chat/realtime"
	"gomarket/internal/chat/render"
	"gomarket/internal/chat/session"
	"gomarket/internal/chat/upload"
	"gomarket/internal/config"
)

var (
	addr     = flag.String("addr", "localhost:7003", "chat-svc gRPC address")
	token    = flag.String("token", os.Getenv("CHAT_TOKEN"), "bearer token")
	me       = flag.String("me", "", "viewer id (must match the token)")
	buyer    = flag.String("buyer", "", "buyer id")
	seller   = flag.String("seller", "", "seller id")
	contract = flag.String("contract", "", "contract id, optional")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg := config.LoadConfig()
	if *me == "" || (*me != *buyer && *me != *seller) {
		glog.Exitf("-me must be one of -buyer or -seller")
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		glog.Exitf("dial %s: %v", *addr, err)
	}
	defer conn.Close()
	c := client.New(conn, *token, client.WithMaxAttachmentBytes(cfg.Chat.MaxAttachmentBytes))
	defer c.Wait()

	drafts, err := draft.OpenBolt(cfg.Chat.DraftDBPath)
	if err != nil {
		glog.Exitf("open drafts: %v", err)
	}
	defer drafts.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conv, err := c.Resolve(ctx, *buyer, *seller, *contract)
	if err != nil {
		glog.Exitf("resolve conversation: %v", err)
	}

	other := conv.Other(*me)
	view, err := session.Mount(ctx, session.Deps{
		History:      c,
		Listener:     realtime.NewListener(c),
		Sender:       c,
		Reads:        c,
		Drafts:       drafts,
		HistoryLimit: cfg.Chat.HistoryLimit,
	}, conv, session.Profile{ID: *me}, session.Profile{ID: other})
	if err != nil {
		glog.Exitf("mount %s: %v", conv.ID, err)
	}
	defer view.Close()

	fmt.Printf("conversation %s with %s (/attach <file> [caption], /quit)\n", conv.ID, other)
	if d := view.Draft(); d != "" {
		fmt.Printf("draft: %s\n", d)
	}

	go printUpdates(view)
	readInput(ctx, view)
}

func printUpdates(view *session.View) {
	printed := make(map[string]bool)
	for {
		select {
		case <-view.Done():
			return
		case u := <-view.Updates():
			switch u.Kind {
			case session.UpdateMessages:
				for _, d := range view.Rendered() {
					if !printed[d.MessageID] {
						printed[d.MessageID] = true
						fmt.Println(line(d))
					}
				}
			case session.UpdateBanner:
				hint := ""
				if u.Retryable {
					hint = " (retry with an empty line)"
				}
				fmt.Printf("! %v%s\n", u.Err, hint)
			}
		}
	}
}

func readInput(ctx context.Context, view *session.View) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := scanner.Text()
		switch {
		case text == "/quit":
			return
		case strings.HasPrefix(text, "/attach "):
			path, caption, _ := strings.Cut(strings.TrimPrefix(text, "/attach "), " ")
			if caption != "" {
				view.SetDraft(caption)
			}
			sendFile(ctx, view, path)
		default:
			if text != "" {
				view.SetDraft(text)
			}
			if _, err := view.Send(ctx, nil); err != nil {
				glog.V(1).Infof("send: %v", err)
			}
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func sendFile(ctx context.Context, view *session.View, path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("! %v\n", err)
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		fmt.Printf("! %v\n", err)
		return
	}
	_, _ = view.Send(ctx, &upload.File{Name: filepath.Base(path), Size: info.Size(), Content: f})
}

func line(d render.RenderData) string {
	who := "them"
	if d.Outgoing {
		who = "me"
	}
	body := d.Body
	switch {
	case d.Degraded():
		body = d.Placeholder
	case d.Offer != nil:
		body = fmt.Sprintf("[offer] %s %s", d.Offer.Title, d.Offer.Price)
	case d.Milestone != nil:
		body = fmt.Sprintf("[milestone] %s %s", d.Milestone.Title, d.Milestone.Amount)
	case d.SystemEvent != nil:
		body = "* " + d.SystemEvent.Text
	}
	for _, a := range d.Attachments {
		body += fmt.Sprintf(" <%s %s>", a.Name, a.URL)
	}
	read := ""
	if d.Outgoing && d.Read {
		read = " ✓✓"
	}
	return fmt.Sprintf("[%s] %s: %s%s", d.Timestamp.Local().Format(time.Kitchen), who, body, read)
}
