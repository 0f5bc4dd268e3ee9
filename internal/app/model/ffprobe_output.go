package model

// FFProbeOutput is the subset of ffprobe -show_streams JSON we care about.
type FFProbeOutput struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate int    `json:"sample_rate,string"`
	} `json:"streams"`
}
